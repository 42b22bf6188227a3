package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json"

// encodeBody converts a request body into its wire bytes, applied once per
// call so retries re-send identical payloads. It may mutate headers: for
// pre-formed binary and multipart entities any caller-set Content-Type is
// deleted, leaving the encoder free to supply the boundary-bearing type
// itself (returned as contentType).
//
// Rules, in order: GET never carries a body; *MultipartBody, []byte, and
// io.Reader pass through unmodified; other values are JSON-marshalled when
// the effective Content-Type is exactly application/json, and passed through
// as text otherwise. A nil body attaches nothing.
func encodeBody(method string, body any, headers map[string]string) (payload []byte, contentType string, err error) {
	if method == http.MethodGet || body == nil {
		return nil, "", nil
	}

	switch v := body.(type) {
	case *MultipartBody:
		headerDel(headers, "Content-Type")
		data, ct, err := v.encode()
		if err != nil {
			return nil, "", err
		}
		return data, ct, nil
	case []byte:
		headerDel(headers, "Content-Type")
		return v, "", nil
	case io.Reader:
		// Drained up front so every attempt re-sends the same bytes.
		headerDel(headers, "Content-Type")
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, "", fmt.Errorf("read body: %w", err)
		}
		return data, "", nil
	}

	if headerGet(headers, "Content-Type") == contentTypeJSON {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshal body: %w", err)
		}
		return data, "", nil
	}

	if s, ok := body.(string); ok {
		return []byte(s), "", nil
	}
	return []byte(fmt.Sprint(body)), "", nil
}

// headerGet looks up a header value case-insensitively.
func headerGet(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// headerDel removes a header case-insensitively.
func headerDel(headers map[string]string, key string) {
	for k := range headers {
		if strings.EqualFold(k, key) {
			delete(headers, k)
		}
	}
}
