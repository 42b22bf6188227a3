package apiclient

import (
	"context"
	"net/http"
)

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.call(ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.call(ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.call(ctx, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.call(ctx, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.call(ctx, http.MethodDelete, path, nil, opts...)
}

func (c *Client) call(ctx context.Context, method, path string, body any, opts ...CallOption) (*Response, error) {
	req := Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}

// Result wraps a response with a decoded body of type T.
type Result[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](c *Client, ctx context.Context, path string, opts ...CallOption) (*Result[T], error) {
	return doTyped[T](c, ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...CallOption) (*Result[T], error) {
	return doTyped[T](c, ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the response into type T.
func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...CallOption) (*Result[T], error) {
	return doTyped[T](c, ctx, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with a JSON body and decodes the response into type T.
func Patch[T any](c *Client, ctx context.Context, path string, body any, opts ...CallOption) (*Result[T], error) {
	return doTyped[T](c, ctx, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request and decodes the JSON response into type T.
func Delete[T any](c *Client, ctx context.Context, path string, opts ...CallOption) (*Result[T], error) {
	return doTyped[T](c, ctx, http.MethodDelete, path, nil, opts...)
}

// doTyped executes a typed request. Bodies sent through the typed surface
// default to JSON encoding unless the caller overrides Content-Type.
func doTyped[T any](c *Client, ctx context.Context, method, path string, body any, opts ...CallOption) (*Result[T], error) {
	req := Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Content-Type": contentTypeJSON},
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var data T
	if len(resp.Body) > 0 {
		if err := resp.Decode(&data); err != nil {
			return nil, err
		}
	}

	return &Result[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}
