// Package storage isolates all cover-image filesystem access behind the
// ImageStore interface so the service can be tested without a real upload
// directory, or pointed at one created per test.
package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// ImageStore is the contract the game service relies on for cover images.
type ImageStore interface {
	// Store writes the uploaded bytes under a generated name and returns
	// that name. The content is accepted as-is; no image validation happens
	// here.
	Store(r io.Reader, originalName string) (string, error)
	// Remove deletes a previously stored file. Removing a file that no
	// longer exists is not an error.
	Remove(filename string) error
}

// DiskStore keeps images as a flat listing in a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store generates a timestamp-plus-random filename, keeping the original
// extension, and writes the bytes under it.
func (s *DiskStore) Store(r io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1000), filepath.Ext(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}
	return name, nil
}

// Remove deletes the named file. A missing file counts as success so callers
// can retry or race deletes without special handling.
func (s *DiskStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
