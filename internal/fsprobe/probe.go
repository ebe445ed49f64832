// Package fsprobe provides the low-level filesystem queries the link engine
// is built on: existence and symlink checks, link target reads, best-effort
// canonicalization, and whole-file text I/O.
//
// Every function here is a thin wrapper over a single syscall (or a short
// chain of them) and never caches — callers always see current filesystem
// state.
package fsprobe

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exists reports whether a filesystem entry of any kind is reachable at path.
// A dangling symlink counts as existing. Errors collapse to false.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsLink reports whether the entry at path, without following it, is a
// symbolic link.
func IsLink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// ReadLinkTarget returns the raw, possibly relative, stored target of a
// symbolic link. Fails if path is not a link or is unreadable.
func ReadLinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("reading link target of %s: %w", path, err)
	}
	return target, nil
}

// Canonicalize returns a best-effort canonical absolute path. It never fails:
// when the path (or its symlink target) does not fully resolve, the longest
// resolvable prefix is used and the remainder appended verbatim. A dangling
// link must still be classifiable, so callers never see an error here.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return resolvePrefix(filepath.Clean(abs))
}

// resolvePrefix resolves symlinks for the longest existing prefix of the
// path, then appends the non-existing suffix.
func resolvePrefix(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}

	dir := filepath.Dir(path)
	if dir == path {
		// Reached the filesystem root.
		return path
	}

	return filepath.Join(resolvePrefix(dir), filepath.Base(path))
}

// SameInode reports whether two paths refer to the same underlying file,
// following symlinks. This is the hardlink-mode equality check.
func SameInode(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", a, err)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", b, err)
	}
	return os.SameFile(infoA, infoB), nil
}

// ReadText reads a whole file as text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText overwrites a whole file atomically using a temp file and rename
// in the same directory.
func WriteText(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".agent-sync-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
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
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
