package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// PayloadKind identifies how a response body is decoded.
type PayloadKind int

const (
	// PayloadText decodes the body as plain text (the fallback).
	PayloadText PayloadKind = iota
	// PayloadJSON decodes the body as JSON.
	PayloadJSON
	// PayloadBinary keeps the body as raw bytes.
	PayloadBinary
	// PayloadForm decodes the body as multipart form data.
	PayloadForm
)

// String returns the payload kind name.
func (k PayloadKind) String() string {
	switch k {
	case PayloadJSON:
		return "json"
	case PayloadBinary:
		return "binary"
	case PayloadForm:
		return "form"
	default:
		return "text"
	}
}

// Response is the result of a completed request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the transport's status reason phrase. May be empty.
	Reason string
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
	// Kind is the decode kind chosen from the declared content type.
	Kind PayloadKind
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Bytes returns the raw body.
func (r *Response) Bytes() []byte {
	return r.Body
}

// Form parses a multipart/form-data body.
func (r *Response) Form() (*multipart.Form, error) {
	_, params, err := mime.ParseMediaType(r.Headers["Content-Type"])
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse form content type: %w", err)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, fmt.Errorf("apiclient: form response has no boundary")
	}
	mr := multipart.NewReader(bytes.NewReader(r.Body), boundary)
	form, err := mr.ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse form response: %w", err)
	}
	return form, nil
}

// Payload decodes the body according to its classified kind: JSON values for
// PayloadJSON, a string for PayloadText, raw bytes for PayloadBinary, and
// field values for PayloadForm.
func (r *Response) Payload() (any, error) {
	switch r.Kind {
	case PayloadJSON:
		if len(r.Body) == 0 {
			return nil, nil
		}
		var v any
		if err := r.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case PayloadBinary:
		return r.Body, nil
	case PayloadForm:
		form, err := r.Form()
		if err != nil {
			return nil, err
		}
		return form.Value, nil
	default:
		return string(r.Body), nil
	}
}

// classifyKind maps a declared content type to a decode kind.
func classifyKind(contentType string) PayloadKind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch {
	case mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json"):
		return PayloadJSON
	case mediaType == "application/octet-stream",
		mediaType == "application/pdf",
		strings.HasPrefix(mediaType, "image/"),
		strings.HasPrefix(mediaType, "video/"),
		strings.HasPrefix(mediaType, "audio/"):
		return PayloadBinary
	case mediaType == "multipart/form-data":
		return PayloadForm
	default:
		return PayloadText
	}
}

// newResponse builds a Response from a completed transport round trip with
// the body already read.
func newResponse(resp *http.Response, body []byte) *Response {
	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp.Status, resp.StatusCode),
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
		Kind:       classifyKind(resp.Header.Get("Content-Type")),
	}
}

// httpError builds the HTTP outcome error for a non-2xx response.
//
// The message is chosen in preference order: a string "message" field inside
// a JSON-decoded object payload, the raw text payload when the body is plain
// text, the transport's reason phrase (legitimately empty in some runtimes),
// then a synthesized "HTTP {status}". Payload decode failures are swallowed;
// whatever decoded (possibly nothing) is attached for caller inspection.
func httpError(resp *Response) *Error {
	var payload any
	if resp.Kind == PayloadJSON {
		if len(resp.Body) > 0 {
			var v any
			if err := json.Unmarshal(resp.Body, &v); err == nil {
				payload = v
			}
		}
	} else if len(resp.Body) > 0 {
		payload = string(resp.Body)
	}

	message := ""
	if obj, ok := payload.(map[string]any); ok {
		if m, ok := obj["message"].(string); ok {
			message = m
		}
	}
	if message == "" && resp.Kind == PayloadText && len(resp.Body) > 0 {
		message = string(resp.Body)
	}
	if message == "" {
		message = resp.Reason
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	return NewHTTPError(resp.StatusCode, message, payload)
}

// reasonPhrase strips the numeric code from a status line like "404 Not
// Found". Servers may omit the phrase entirely.
func reasonPhrase(status string, code int) string {
	return strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprintf("%d", code)))
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
