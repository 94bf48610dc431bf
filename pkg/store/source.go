package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Source is where the timetable document comes from.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch reads the whole file.
func (f FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.Path)
}

func (f FileSource) String() string { return f.Path }

// HTTPSource downloads the document with a GET request. With a Cache the
// request is conditional and a 304 answer is served from the cache.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Cache  *HTTPCache
}

// Fetch performs the request; any non-2xx status other than a revalidated 304
// is an error.
func (h HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var cached CachedDocument
	var haveCached bool
	if h.Cache != nil {
		if cached, haveCached = h.Cache.Get(h.URL); haveCached {
			if cached.ETag != "" {
				req.Header.Set("If-None-Match", cached.ETag)
			}
			if cached.LastModified != "" {
				req.Header.Set("If-Modified-Since", cached.LastModified)
			}
		}
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotModified && haveCached {
		return cached.Body, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if h.Cache != nil {
		doc := CachedDocument{
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
			Body:         body,
		}
		if doc.ETag == "" && doc.LastModified == "" {
			err = h.Cache.Forget(h.URL)
		} else {
			err = h.Cache.Put(h.URL, doc)
		}
		if err != nil {
			slog.Warn("store: cache write", "source", h.URL, "error", err)
		}
	}
	return body, nil
}

func (h HTTPSource) String() string { return h.URL }

// ParseSource picks an HTTPSource for http(s) URLs and a FileSource for
// anything else. "~" is expanded for file paths.
func ParseSource(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("store: source required")
	}
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		if u.Host == "" {
			return nil, fmt.Errorf("store: source %q has no host", location)
		}
		return HTTPSource{URL: u.String()}, nil
	}
	path, err := homedir.Expand(location)
	if err != nil {
		return nil, fmt.Errorf("store: expand %q: %w", location, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return FileSource{Path: path}, nil
}
