package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeDocument(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
}

func TestCatalogSnapshotBeforeLoad(t *testing.T) {
	c := NewCatalog(FileSource{Path: filepath.Join(t.TempDir(), "missing.json")})
	if _, err := c.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestCatalogReloadReplacesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jadwal.json")
	writeDocument(t, path, `{"teachers": [{"id": "T1", "name": "One"}], "subjects": []}`)

	c := NewCatalog(FileSource{Path: path})
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	first, err := c.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(first.Teachers) != 1 {
		t.Fatalf("expected one teacher, got %d", len(first.Teachers))
	}
	if c.LoadedAt().IsZero() {
		t.Fatalf("expected load time to be recorded")
	}

	writeDocument(t, path, `{"teachers": [{"id": "T1"}, {"id": "T2"}], "subjects": []}`)
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second, _ := c.Snapshot()
	if len(second.Teachers) != 2 {
		t.Fatalf("expected two teachers after reload, got %d", len(second.Teachers))
	}
	if len(first.Teachers) != 1 {
		t.Fatalf("previous snapshot must not change")
	}
}

func TestCatalogFailedReloadIsTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jadwal.json")
	writeDocument(t, path, `{"teachers": []}`)

	c := NewCatalog(FileSource{Path: path})
	if err := c.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	writeDocument(t, path, `{"teachers": [`)
	if err := c.Reload(context.Background()); err == nil {
		t.Fatalf("expected reload to fail on truncated document")
	}
	if st, err := c.Snapshot(); err == nil || st != nil {
		t.Fatalf("expected no partial data after failed load, got %v / %v", st, err)
	}
	if _, err := c.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected failed load to wrap ErrNotLoaded, got %v", err)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jadwal-pembelajaran.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"teachers": [{"id": "T1"}], "subjects": []}`))
	}))
	defer srv.Close()

	src, err := ParseSource(srv.URL + "/jadwal-pembelajaran.json")
	if err != nil {
		t.Fatalf("parse source: %v", err)
	}
	if _, ok := src.(HTTPSource); !ok {
		t.Fatalf("expected http source, got %T", src)
	}
	st, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(st.Teachers) != 1 {
		t.Fatalf("expected one teacher, got %d", len(st.Teachers))
	}

	missing, _ := ParseSource(srv.URL + "/nope.json")
	if _, err := Load(context.Background(), missing); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestParseSource(t *testing.T) {
	if _, err := ParseSource("  "); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, err := ParseSource("http://"); err == nil {
		t.Fatalf("expected error for url without host")
	}
	src, err := ParseSource("testdata/jadwal.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fs, ok := src.(FileSource)
	if !ok || !filepath.IsAbs(fs.Path) {
		t.Fatalf("expected absolute file source, got %#v", src)
	}
}

func TestStaticCatalog(t *testing.T) {
	if _, err := Static(nil).Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded for empty static catalog")
	}
	st := &Store{}
	got, err := Static(st).Snapshot()
	if err != nil || got != st {
		t.Fatalf("unexpected snapshot %v %v", got, err)
	}
}
