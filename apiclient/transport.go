package apiclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// Doer is the transport primitive the client dispatches through. Stock
// *http.Client satisfies it; tests and caching layers substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultTransport returns a clone of the stdlib default transport,
// safe to mutate before handing to a client.
func DefaultTransport() *http.Transport {
	return http.DefaultTransport.(*http.Transport).Clone()
}

// H2CTransport returns an HTTP/2 cleartext transport for server-to-server
// dispatch inside trusted networks, where TLS is terminated elsewhere.
func H2CTransport(dialTimeout time.Duration) *http2.Transport {
	return &http2.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			d := net.Dialer{Timeout: dialTimeout}
			return d.DialContext(ctx, network, addr)
		},
	}
}
