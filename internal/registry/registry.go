// Package registry maintains the JSON-backed catalog of project directories
// known to agent-sync. The link engine has no dependency on it; only the CLI
// reads and writes it.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Registry is the on-disk catalog of registered projects.
type Registry struct {
	Version  int       `json:"version"`
	Projects []Project `json:"projects"`
}

// Project records one registered project directory.
type Project struct {
	Root         string    `json:"root"`
	Canonical    string    `json:"canonical,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// DefaultPath returns the registry location under the user data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "agent-sync", "projects.json")
}

// Load reads the registry. A missing file yields an empty registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry atomically using a temp file and rename.
func Save(path string, reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating registry directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.tmp")
	if err != nil {
		return fmt.Errorf("creating registry temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing registry temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing registry temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming registry temp file: %w", err)
	}

	success = true
	return nil
}

// Add registers a project root. Returns false if the root is already
// registered (the existing entry is left untouched).
func (r *Registry) Add(root, canonical string, now time.Time) bool {
	for _, p := range r.Projects {
		if p.Root == root {
			return false
		}
	}
	r.Projects = append(r.Projects, Project{Root: root, Canonical: canonical, RegisteredAt: now})
	return true
}

// Remove deregisters a project root. Returns false if it was not registered.
func (r *Registry) Remove(root string) bool {
	for i, p := range r.Projects {
		if p.Root == root {
			r.Projects = append(r.Projects[:i], r.Projects[i+1:]...)
			return true
		}
	}
	return false
}
