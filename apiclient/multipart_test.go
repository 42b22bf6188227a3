package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMultipartBody_Encode(t *testing.T) {
	mp := &MultipartBody{
		Fields: map[string]string{"purpose": "avatar"},
		Files: []FileField{
			{
				FieldName: "file",
				FileName:  "pic.png",
				Data:      []byte{0x89, 0x50, 0x4e, 0x47},
			},
		},
	}

	body, ct, err := mp.encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
		t.Errorf("expected boundary-bearing content type, got %q", ct)
	}
	s := string(body)
	if !strings.Contains(s, `name="purpose"`) || !strings.Contains(s, "avatar") {
		t.Error("form field missing from encoded body")
	}
	if !strings.Contains(s, `filename="pic.png"`) {
		t.Error("file part missing from encoded body")
	}
}

func TestMultipartBody_CustomContentType(t *testing.T) {
	mp := &MultipartBody{
		Files: []FileField{
			{
				FieldName:   "doc",
				FileName:    "report.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.4"),
			},
		},
	}

	body, _, err := mp.encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "Content-Type: application/pdf") {
		t.Error("expected the custom part content type")
	}
}

func TestMultipartBody_ReaderSource(t *testing.T) {
	mp := &MultipartBody{
		Files: []FileField{
			{
				FieldName: "file",
				FileName:  "big.bin",
				Reader:    strings.NewReader("streamed bytes"),
			},
		},
	}

	body, _, err := mp.encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "streamed bytes") {
		t.Error("reader content missing from encoded body")
	}
}

func TestEscapeQuotes(t *testing.T) {
	if got := escapeQuotes(`file "name".txt`); got != `file \"name\".txt` {
		t.Errorf("unexpected escaping: %q", got)
	}
}

func TestClient_Post_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
			w.WriteHeader(400)
			return
		}
		if got := r.FormValue("purpose"); got != "avatar" {
			t.Errorf("expected purpose=avatar, got %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected file part: %v", err)
			w.WriteHeader(400)
			return
		}
		defer f.Close()
		if hdr.Filename != "pic.png" {
			t.Errorf("expected pic.png, got %q", hdr.Filename)
		}
		data, _ := io.ReadAll(f)
		if len(data) != 4 {
			t.Errorf("expected 4 file bytes, got %d", len(data))
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	resp, err := c.Post(context.Background(), "/upload", &MultipartBody{
		Fields: map[string]string{"purpose": "avatar"},
		Files: []FileField{
			{FieldName: "file", FileName: "pic.png", Data: []byte{0x89, 0x50, 0x4e, 0x47}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
