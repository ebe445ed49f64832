package agent

import (
	"strings"
	"testing"

	"github.com/GowayLee/agent-sync/internal/config"
)

func TestMirrorFor(t *testing.T) {
	got, err := MirrorFor("claude")
	if err != nil {
		t.Fatalf("MirrorFor: %v", err)
	}
	if got != "CLAUDE.md" {
		t.Errorf("MirrorFor(claude) = %q", got)
	}

	if _, err := MirrorFor("unknown-agent"); err == nil {
		t.Error("expected error for unknown agent")
	}
}

func TestKnownAgentsSorted(t *testing.T) {
	names := KnownAgents()
	if len(names) == 0 {
		t.Fatal("no built-in agents")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("KnownAgents not sorted: %v", names)
		}
	}
}

func TestBindings(t *testing.T) {
	cfg := &config.Config{
		Version:   1,
		Canonical: "AGENTS.md",
		Agents: []config.Agent{
			{Name: "gemini"},
			{Name: "custom", Path: "docs/CUSTOM.md"},
			{Name: "claude"},
		},
	}

	bindings, err := Bindings(cfg)
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}

	if len(bindings) != 3 {
		t.Fatalf("bindings = %+v", bindings)
	}
	// Declaration order, explicit path wins over built-in.
	if bindings[0].Name != "gemini" || bindings[0].MirrorPath != "GEMINI.md" {
		t.Errorf("bindings[0] = %+v", bindings[0])
	}
	if bindings[1].MirrorPath != "docs/CUSTOM.md" {
		t.Errorf("bindings[1] = %+v", bindings[1])
	}
	if bindings[2].MirrorPath != "CLAUDE.md" {
		t.Errorf("bindings[2] = %+v", bindings[2])
	}
}

func TestBindingsUnknownAgentWithoutPath(t *testing.T) {
	cfg := &config.Config{
		Version:   1,
		Canonical: "AGENTS.md",
		Agents:    []config.Agent{{Name: "mystery"}},
	}

	_, err := Bindings(cfg)
	if err == nil {
		t.Fatal("expected error for unknown agent without explicit path")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("error should name the agent: %v", err)
	}
}
