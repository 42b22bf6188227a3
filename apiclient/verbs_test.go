package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestTypedGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user{ID: 7, Name: "Alice"})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Get[user](c, context.Background(), "/users/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 {
		t.Errorf("expected 200, got %d", res.StatusCode)
	}
	if res.Data.ID != 7 || res.Data.Name != "Alice" {
		t.Errorf("unexpected decoded data: %+v", res.Data)
	}
}

func TestTypedPost_DefaultsToJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("typed bodies default to JSON, got %q", ct)
		}
		var u user
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			t.Errorf("expected JSON body: %v", err)
		}
		u.ID = 1
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(u)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Post[user](c, context.Background(), "/users", user{Name: "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 201 {
		t.Errorf("expected 201, got %d", res.StatusCode)
	}
	if res.Data.ID != 1 || res.Data.Name != "Bob" {
		t.Errorf("unexpected decoded data: %+v", res.Data)
	}
}

func TestTypedGet_ErrorCarriesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"no such user","id":9}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, err := Get[user](c, context.Background(), "/users/9")
	if !IsHTTPError(err) {
		t.Fatalf("expected an HTTP error, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected a typed error")
	}
	if e.Message != "no such user" {
		t.Errorf("expected payload message, got %q", e.Message)
	}
	payload, ok := e.Payload.(map[string]any)
	if !ok || payload["id"] != float64(9) {
		t.Errorf("expected decoded payload, got %v", e.Payload)
	}
}

func TestTypedDelete_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	res, err := Delete[struct{}](c, context.Background(), "/users/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 204 {
		t.Errorf("expected 204, got %d", res.StatusCode)
	}
}
