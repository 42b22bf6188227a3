package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/serhatcn/apikit/apiclient"
	"github.com/serhatcn/apikit/config"
)

var requestFlags struct {
	base          string
	publicBase    string
	browserOrigin string
	headers       []string
	query         []string
	data          string
	contentType   string
	timeout       time.Duration
	attempts      int
	backoff       time.Duration
	bearer        string
}

var requestCmd = &cobra.Command{
	Use:   "request METHOD PATH",
	Short: "Dispatch a request and print the classified outcome",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequest,
}

func init() {
	f := requestCmd.Flags()
	f.StringVar(&requestFlags.base, "base", "", "server-only base origin (overrides config)")
	f.StringVar(&requestFlags.publicBase, "public-base", "", "public base origin (overrides config)")
	f.StringVar(&requestFlags.browserOrigin, "browser-origin", "", "dispatch as a browser runtime with this page origin")
	f.StringArrayVarP(&requestFlags.headers, "header", "H", nil, "header override as key:value (repeatable)")
	f.StringArrayVarP(&requestFlags.query, "query", "q", nil, "query parameter as key=value (repeatable)")
	f.StringVarP(&requestFlags.data, "data", "d", "", "request body")
	f.StringVar(&requestFlags.contentType, "content-type", "application/json", "body content type")
	f.DurationVar(&requestFlags.timeout, "timeout", 0, "per-attempt timeout (0 = config default)")
	f.IntVar(&requestFlags.attempts, "attempts", 0, "retry attempt budget (0 = config default)")
	f.DurationVar(&requestFlags.backoff, "backoff", 0, "base backoff between attempts")
	f.StringVar(&requestFlags.bearer, "bearer", "", "bearer token")
}

func runRequest(cmd *cobra.Command, args []string) error {
	method := strings.ToUpper(args[0])
	path := args[1]

	client, err := buildClient()
	if err != nil {
		return err
	}
	if requestFlags.bearer != "" {
		client.SetBearerToken(requestFlags.bearer)
	}

	req := apiclient.Request{
		Method: method,
		Path:   path,
	}
	if requestFlags.data != "" && method != http.MethodGet {
		req.Body = requestFlags.data
		req.Headers = map[string]string{"Content-Type": requestFlags.contentType}
	}
	for _, h := range requestFlags.headers {
		k, v, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid header %q, want key:value", h)
		}
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		req.Headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	for _, q := range requestFlags.query {
		k, v, ok := strings.Cut(q, "=")
		if !ok {
			return fmt.Errorf("invalid query %q, want key=value", q)
		}
		if req.Query == nil {
			req.Query = make(map[string]any)
		}
		req.Query[k] = v
	}
	if requestFlags.timeout != 0 {
		req.Timeout = requestFlags.timeout
	}
	if requestFlags.attempts > 0 || requestFlags.backoff > 0 {
		req.Retry = &apiclient.RetryPolicy{
			MaxAttempts: requestFlags.attempts,
			Backoff:     requestFlags.backoff,
		}
	}

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	fmt.Printf("%d %s\n", resp.StatusCode, resp.Reason)
	for k, v := range resp.Headers {
		fmt.Printf("%s: %s\n", k, v)
	}
	fmt.Println()
	payload, perr := resp.Payload()
	if perr != nil {
		fmt.Println(resp.Text())
		return nil
	}
	switch p := payload.(type) {
	case []byte:
		fmt.Printf("<%d bytes of %s>\n", len(p), resp.Headers["Content-Type"])
	default:
		fmt.Printf("%v\n", p)
	}
	return nil
}

// buildClient assembles a client from flags, falling back to the config
// package for anything not set on the command line.
func buildClient() (*apiclient.Client, error) {
	cfg := apiclient.Config{
		BaseURL:       requestFlags.base,
		PublicBaseURL: requestFlags.publicBase,
	}
	if requestFlags.browserOrigin != "" {
		cfg.Execution = apiclient.BrowserContext(requestFlags.browserOrigin)
	}

	if cfg.BaseURL == "" && cfg.PublicBaseURL == "" {
		if settings, err := config.Load(); err == nil {
			cfg.BaseURL = settings.BaseURL
			cfg.PublicBaseURL = settings.PublicBaseURL
			cfg.Timeout = settings.Timeout
		}
	}

	return apiclient.New(cfg)
}

func printError(err error) {
	var e *apiclient.Error
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "error (%s): %s\n", e.Kind, e.Message)
		if e.Payload != nil {
			fmt.Fprintf(os.Stderr, "payload: %v\n", e.Payload)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
