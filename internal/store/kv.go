// Package store owns the working/original profile snapshots and their
// persistence to a local key-value store.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is the durable local key-value mechanism the store persists to. Keys are
// slash-separated paths; values are opaque byte documents.
type KV interface {
	// Get returns the value for key. The second result is false when the key
	// does not exist; that is not an error.
	Get(key string) ([]byte, bool, error)
	// Put durably writes value under key.
	Put(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// FileKV is a KV backed by one file per key under a root directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// document behind.
type FileKV struct {
	root string
}

// NewFileKV creates the root directory if needed and returns a file-backed KV.
func NewFileKV(root string) (*FileKV, error) {
	if root == "" {
		return nil, fmt.Errorf("state directory is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", root, err)
	}
	return &FileKV{root: root}, nil
}

func (f *FileKV) path(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || filepath.IsAbs(key) {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}

// Get implements KV.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Put implements KV.
func (f *FileKV) Put(key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Delete implements KV.
func (f *FileKV) Delete(key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
