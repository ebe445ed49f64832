package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config file names probed during discovery, in preference order.
var configFileNames = []string{"agent-sync.toml", "agent-sync.yaml", "agent-sync.yml"}

// Discover walks upward from startDir looking for a configuration file and
// returns its path. The walk stops at the filesystem root.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no agent-sync configuration found in %s or any parent directory", startDir)
		}
		dir = parent
	}
}
