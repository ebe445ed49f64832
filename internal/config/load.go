package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. The codec is picked by
// extension: .toml is the default format, .yaml/.yml is accepted for
// projects that prefer it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	cfg.Agents = dedupeAgents(cfg.Agents)
	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if cfg.Canonical == "" {
		errs = append(errs, "'canonical' is required — the file all agent mirrors link to")
	}
	if filepath.IsAbs(cfg.Canonical) {
		errs = append(errs, "'canonical' must be relative to the project root")
	}

	switch cfg.LinkKind {
	case "", LinkKindSymlink, LinkKindHardlink:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid link_kind '%s' — must be one of: symlink, hardlink", cfg.LinkKind))
	}

	if len(cfg.Agents) == 0 {
		errs = append(errs, "at least one agent is required")
	}

	for i, ag := range cfg.Agents {
		prefix := fmt.Sprintf("agent[%d]", i)
		if ag.Name != "" {
			prefix = fmt.Sprintf("agent '%s'", ag.Name)
		}

		if ag.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		}
		if filepath.IsAbs(ag.Path) {
			errs = append(errs, fmt.Sprintf("%s: 'path' must be relative to the project root", prefix))
		}
		if ag.Path != "" && ag.Path == cfg.Canonical {
			errs = append(errs, fmt.Sprintf("%s: 'path' must differ from the canonical file", prefix))
		}
	}

	return errs
}

// dedupeAgents keeps the last entry for each name while preserving the
// declaration order of the surviving entries.
func dedupeAgents(agents []Agent) []Agent {
	last := make(map[string]int, len(agents))
	for i, ag := range agents {
		last[ag.Name] = i
	}

	out := make([]Agent, 0, len(last))
	for i, ag := range agents {
		if last[ag.Name] == i {
			out = append(out, ag)
		}
	}
	return out
}
