package store

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"
)

// HTTPCache keeps the last document downloaded from each URL together with
// its validators, so an unchanged document can be revalidated with a
// conditional GET instead of downloaded again.
type HTTPCache struct {
	d *diskv.Diskv
}

// CachedDocument is one cached download.
type CachedDocument struct {
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Body         []byte `json:"body"`
}

// NewHTTPCache stores documents as flat files under dir.
func NewHTTPCache(dir string) *HTTPCache {
	return &HTTPCache{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 8 * 1024 * 1024, // 8MB
	})}
}

func cacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:]) + ".json"
}

// Get returns the cached document for url, if any.
func (c *HTTPCache) Get(url string) (CachedDocument, bool) {
	key := cacheKey(url)
	if !c.d.Has(key) {
		return CachedDocument{}, false
	}
	val, err := c.d.Read(key)
	if err != nil {
		return CachedDocument{}, false
	}
	var doc CachedDocument
	if err := json.Unmarshal(val, &doc); err != nil {
		return CachedDocument{}, false
	}
	return doc, true
}

// Put replaces the cached document for url.
func (c *HTTPCache) Put(url string, doc CachedDocument) error {
	val, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.d.Write(cacheKey(url), val)
}

// Forget drops the cached document for url.
func (c *HTTPCache) Forget(url string) error {
	key := cacheKey(url)
	if !c.d.Has(key) {
		return nil
	}
	return c.d.Erase(key)
}
