// Package backup provides a content-addressed stash for canonical file
// content about to be overwritten by a merge. Objects are stored by SHA256
// and verified on retrieval, so a botched merge can always be walked back by
// hand.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Store is a content-addressed object directory.
type Store struct {
	dir string
}

// New creates a Store at the given directory, creating it if needed.
func New(dir string) (*Store, error) {
	objDir := filepath.Join(dir, "objects")
	if err := os.MkdirAll(objDir, 0755); err != nil {
		return nil, fmt.Errorf("creating backup directory %s: %w", objDir, err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the default backup directory under the user cache home.
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "agent-sync", "backups")
}

// Stash stores content by its SHA256 hash and returns the hash. Storing the
// same content twice is a no-op.
func (s *Store) Stash(content string) (string, error) {
	hash := ComputeHash([]byte(content))
	path := s.objectPath(hash)

	// Already stashed — objects are immutable.
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating backup subdirectory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating backup temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return "", fmt.Errorf("writing backup temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing backup temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("renaming backup temp file: %w", err)
	}

	success = true
	return hash, nil
}

// Get retrieves stashed content by hash. Returns the content and true if
// found and verified; a corrupt entry is removed and reported as missing.
func (s *Store) Get(hash string) (string, bool, error) {
	path := s.objectPath(hash)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading backup entry %s: %w", hash, err)
	}

	if ComputeHash(data) != hash {
		_ = os.Remove(path)
		return "", false, nil
	}

	return string(data), true, nil
}

// Has checks whether a hash is stashed without reading it.
func (s *Store) Has(hash string) bool {
	_, err := os.Stat(s.objectPath(hash))
	return err == nil
}

// Path returns the store's root directory.
func (s *Store) Path() string {
	return s.dir
}

func (s *Store) objectPath(hash string) string {
	if len(hash) < 2 {
		return filepath.Join(s.dir, "objects", hash)
	}
	return filepath.Join(s.dir, "objects", hash[:2], hash)
}

// ComputeHash returns the hex SHA256 of content.
func ComputeHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}
