package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore writes objects under a local root directory. Used for development
// and tests; public URLs are composed from a configured base URL.
type FSStore struct {
	root          string
	publicBaseURL string
}

// NewFSStore creates a filesystem-backed store rooted at root.
func NewFSStore(root, publicBaseURL string) *FSStore {
	return &FSStore{
		root:          root,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes data to root/key. With Upsert=false the file is created
// exclusively; an existing path yields ErrObjectExists.
func (s *FSStore) Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Upsert {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("upload %s: %w", key, ErrObjectExists)
		}
		return fmt.Errorf("upload %s: %w", key, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write object %s: %w", key, err)
	}
	return nil
}

// PublicURL joins the configured base URL with the storage key.
func (s *FSStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
