package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "agent-sync.toml", `
version = 1
canonical = "AGENTS.md"
link_kind = "symlink"

[[agents]]
name = "claude"

[[agents]]
name = "custom"
path = "docs/CUSTOM.md"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Canonical != "AGENTS.md" {
		t.Errorf("Canonical = %q", cfg.Canonical)
	}
	if cfg.LinkKind != LinkKindSymlink {
		t.Errorf("LinkKind = %q", cfg.LinkKind)
	}
	if len(cfg.Agents) != 2 || cfg.Agents[0].Name != "claude" || cfg.Agents[1].Path != "docs/CUSTOM.md" {
		t.Errorf("Agents = %+v", cfg.Agents)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "agent-sync.yaml", `
version: 1
canonical: AGENTS.md
agents:
  - name: claude
  - name: gemini
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Agents) != 2 {
		t.Errorf("Agents = %+v", cfg.Agents)
	}
}

func TestLoadKeepsDeclarationOrder(t *testing.T) {
	path := writeConfig(t, "agent-sync.toml", `
version = 1
canonical = "AGENTS.md"

[[agents]]
name = "zeta"
path = "Z.md"

[[agents]]
name = "alpha"
path = "A.md"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Agents[0].Name != "zeta" || cfg.Agents[1].Name != "alpha" {
		t.Errorf("declaration order not preserved: %+v", cfg.Agents)
	}
}

func TestLoadDuplicateAgentLastWins(t *testing.T) {
	path := writeConfig(t, "agent-sync.toml", `
version = 1
canonical = "AGENTS.md"

[[agents]]
name = "claude"
path = "FIRST.md"

[[agents]]
name = "gemini"

[[agents]]
name = "claude"
path = "SECOND.md"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Agents) != 2 {
		t.Fatalf("Agents = %+v, want duplicates collapsed", cfg.Agents)
	}
	// The later entry wins; order follows the surviving entries.
	if cfg.Agents[0].Name != "gemini" || cfg.Agents[1].Path != "SECOND.md" {
		t.Errorf("Agents = %+v", cfg.Agents)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "bad version",
			cfg:     Config{Version: 2, Canonical: "AGENTS.md", Agents: []Agent{{Name: "claude"}}},
			wantErr: "unsupported version",
		},
		{
			name:    "missing canonical",
			cfg:     Config{Version: 1, Agents: []Agent{{Name: "claude"}}},
			wantErr: "'canonical' is required",
		},
		{
			name:    "absolute canonical",
			cfg:     Config{Version: 1, Canonical: "/etc/AGENTS.md", Agents: []Agent{{Name: "claude"}}},
			wantErr: "must be relative",
		},
		{
			name:    "bad link kind",
			cfg:     Config{Version: 1, Canonical: "AGENTS.md", LinkKind: "junction", Agents: []Agent{{Name: "claude"}}},
			wantErr: "invalid link_kind",
		},
		{
			name:    "no agents",
			cfg:     Config{Version: 1, Canonical: "AGENTS.md"},
			wantErr: "at least one agent",
		},
		{
			name:    "agent missing name",
			cfg:     Config{Version: 1, Canonical: "AGENTS.md", Agents: []Agent{{Path: "X.md"}}},
			wantErr: "'name' is required",
		},
		{
			name:    "agent path equals canonical",
			cfg:     Config{Version: 1, Canonical: "AGENTS.md", Agents: []Agent{{Name: "x", Path: "AGENTS.md"}}},
			wantErr: "must differ from the canonical file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.cfg)
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v missing %q", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateOK(t *testing.T) {
	cfg := Config{
		Version:   1,
		Canonical: "AGENTS.md",
		LinkKind:  LinkKindHardlink,
		Agents:    []Agent{{Name: "claude"}, {Name: "custom", Path: "docs/C.md"}},
	}
	if errs := Validate(&cfg); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}
