// Package sandbox confines engine writes to the project root. Mirror paths
// come from user configuration, so every path is resolved and containment-
// checked before anything touches it.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePath checks that targetPath stays within projectRoot once
// symlinks are resolved and the path is normalized. Returns the resolved
// absolute path.
func ValidatePath(projectRoot, targetPath string) (string, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("resolving project root symlinks: %w", err)
	}

	candidate := filepath.Clean(filepath.Join(realRoot, targetPath))

	// The path may not exist yet, so resolve as much of it as we can.
	resolved := resolveExistingPrefix(candidate)

	// Trailing separator avoids matching "projectroot2" against "projectroot".
	rootPrefix := realRoot + string(filepath.Separator)
	if resolved != realRoot && !strings.HasPrefix(resolved, rootPrefix) {
		return "", fmt.Errorf("path '%s' resolves to '%s' which is outside the project root '%s'", targetPath, resolved, realRoot)
	}

	return resolved, nil
}

// resolveExistingPrefix resolves symlinks for the longest existing prefix of
// the path, then appends the non-existing suffix.
func resolveExistingPrefix(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path
	}

	return filepath.Join(resolveExistingPrefix(dir), filepath.Base(path))
}

// WriteFile writes content to a path within the project root, creating
// parent directories as needed.
func WriteFile(projectRoot, relPath string, content []byte, perm os.FileMode) error {
	resolved, err := ValidatePath(projectRoot, relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(resolved), err)
	}

	if err := os.WriteFile(resolved, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", resolved, err)
	}
	return nil
}

// Remove removes a file within the project root.
func Remove(projectRoot, relPath string) error {
	resolved, err := ValidatePath(projectRoot, relPath)
	if err != nil {
		return err
	}
	return os.Remove(resolved)
}
