package storage

import (
	"context"
	"io"
	"strings"
)

// ObjectStorage is the object store used for uploaded media.
// Implemented by MinIOStorage and S3Storage.
type ObjectStorage interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// RemoveObjects deletes keys; missing keys are not an error.
	RemoveObjects(ctx context.Context, keys []string) error
	// KeyFromURL maps a public URL produced by Upload back to its key.
	KeyFromURL(url string) (string, bool)
}

// publicURLs joins keys onto a public base and strips it back off.
type publicURLs struct {
	base string // no trailing slash
}

func (p publicURLs) url(key string) string {
	return p.base + "/" + strings.TrimLeft(key, "/")
}

func (p publicURLs) key(url string) (string, bool) {
	prefix := p.base + "/"
	if p.base == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", false
	}
	return key, true
}
