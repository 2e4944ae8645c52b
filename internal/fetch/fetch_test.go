package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestFetcherGetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, DefaultUserAgent)
		}
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":"hello"}`))
	}))
	defer srv.Close()

	f := New()
	h, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if h == nil {
		t.Fatal("Get() handle = nil, want non-nil")
	}

	lm, ok := h.LastModified()
	if !ok {
		t.Fatal("LastModified() ok = false, want true")
	}
	if lm.Year() != 2006 {
		t.Errorf("LastModified() year = %d, want 2006", lm.Year())
	}
}

func TestFetcherGetNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := New()
	h, err := f.Get(context.Background(), srv.URL)
	if h != nil {
		t.Errorf("Get() handle = %v, want nil", h)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Get() error = %v, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, http.StatusNotFound)
	}
}

func TestFetcherGetTransportError(t *testing.T) {
	f := New()
	h, err := f.Get(context.Background(), "http://127.0.0.1:0")
	if h != nil {
		t.Errorf("Get() handle = %v, want nil", h)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Get() error = %v, want *RequestError", err)
	}
}

func TestFetcherGetEmptyURL(t *testing.T) {
	f := New()
	h, err := f.Get(context.Background(), "")
	if h != nil || err != nil {
		t.Errorf("Get(\"\") = (%v, %v), want (nil, nil)", h, err)
	}
}

func TestHandleLastModifiedMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := New()
	h, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, ok := h.LastModified(); ok {
		t.Error("LastModified() ok = true, want false")
	}
}

func TestHandleWriteFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("archive-bytes"))
	}))
	defer srv.Close()

	f := New()
	h, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "nested", "out.zip")
	if !h.WriteFile(dest) {
		t.Fatal("WriteFile() = false, want true")
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "archive-bytes" {
		t.Errorf("file contents = %q, want %q", data, "archive-bytes")
	}
}

func TestFetchJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":"widget"}`))
	}))
	defer srv.Close()

	f := New()
	got, ok := FetchJSON[payload](context.Background(), f, srv.URL)
	if !ok {
		t.Fatal("FetchJSON() ok = false, want true")
	}
	if got.Name != "widget" {
		t.Errorf("Name = %q, want %q", got.Name, "widget")
	}
}

func TestFetchJSONMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	f := New()
	got, ok := FetchJSON[payload](context.Background(), f, srv.URL)
	if ok || got != nil {
		t.Errorf("FetchJSON() = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestFetchJSONEmptyURL(t *testing.T) {
	f := New()
	got, ok := FetchJSON[payload](context.Background(), f, "")
	if ok || got != nil {
		t.Errorf("FetchJSON(\"\") = (%v, %v), want (nil, false)", got, ok)
	}
}
