package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestHTTPCacheRoundTrip(t *testing.T) {
	c := NewHTTPCache(t.TempDir())
	if _, ok := c.Get("https://example.sch.id/jadwal.json"); ok {
		t.Fatalf("expected empty cache")
	}
	doc := CachedDocument{ETag: `"v1"`, Body: []byte(`{"teachers": []}`)}
	if err := c.Put("https://example.sch.id/jadwal.json", doc); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Get("https://example.sch.id/jadwal.json")
	if !ok || got.ETag != `"v1"` || string(got.Body) != `{"teachers": []}` {
		t.Fatalf("unexpected cached document %+v %v", got, ok)
	}
	if _, ok := c.Get("https://example.sch.id/other.json"); ok {
		t.Fatalf("urls must not share an entry")
	}
	if err := c.Forget("https://example.sch.id/jadwal.json"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if _, ok := c.Get("https://example.sch.id/jadwal.json"); ok {
		t.Fatalf("expected entry to be gone")
	}
}

func TestHTTPSourceRevalidates(t *testing.T) {
	var full, notModified atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			notModified.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		full.Add(1)
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(`{"teachers": [{"id": "T1"}, {"id": "T2"}], "subjects": []}`))
	}))
	defer srv.Close()

	src := HTTPSource{URL: srv.URL + "/jadwal.json", Cache: NewHTTPCache(t.TempDir())}
	for i := 0; i < 3; i++ {
		st, err := Load(context.Background(), src)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(st.Teachers) != 2 {
			t.Fatalf("load %d: expected two teachers, got %d", i, len(st.Teachers))
		}
	}
	if full.Load() != 1 || notModified.Load() != 2 {
		t.Fatalf("expected one download and two revalidations, got %d and %d", full.Load(), notModified.Load())
	}
}

func TestHTTPSourceNotModifiedWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	if _, err := (HTTPSource{URL: srv.URL}).Fetch(context.Background()); err == nil {
		t.Fatalf("expected a bare 304 to fail")
	}
}
