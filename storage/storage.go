package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a blob key does not exist in the store.
var ErrNotFound = errors.New("storage: blob not found")

// BlobStore is durable storage for uploaded images, addressed by an
// opaque string key. Implementations do not cache and do not retry.
type BlobStore interface {
	// Store writes data under a newly generated key and returns the key.
	Store(ctx context.Context, data []byte, suggestedName string) (string, error)
	// Retrieve returns the blob for key, or ErrNotFound.
	Retrieve(ctx context.Context, key string) ([]byte, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeName reduces a client-supplied filename to a portable basename.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// NewKey builds a blob key from the upload time, a random token and the
// sanitized filename. The timestamp keeps keys roughly sortable; the
// uuid makes same-named uploads in the same second distinct.
func NewKey(suggestedName string) string {
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.New().String(), sanitizeName(suggestedName))
}
