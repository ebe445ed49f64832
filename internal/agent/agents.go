// Package agent maps agent names to the mirror files they read.
package agent

import (
	"fmt"
	"sort"

	"github.com/GowayLee/agent-sync/internal/config"
	"github.com/GowayLee/agent-sync/internal/engine"
)

// builtinAgents defines the default mirror file for well-known agents.
var builtinAgents = map[string]string{
	"claude":   "CLAUDE.md",
	"gemini":   "GEMINI.md",
	"codex":    "AGENTS.md",
	"cursor":   ".cursorrules",
	"windsurf": ".windsurfrules",
	"cline":    ".clinerules",
	"copilot":  ".github/copilot-instructions.md",
	"aider":    "CONVENTIONS.md",
}

// MirrorFor returns the built-in mirror path for an agent name.
func MirrorFor(name string) (string, error) {
	path, ok := builtinAgents[name]
	if !ok {
		return "", fmt.Errorf("unknown agent '%s' — add 'path = \"...\"' to its entry or use one of: %v", name, KnownAgents())
	}
	return path, nil
}

// KnownAgents returns the sorted list of built-in agent names.
func KnownAgents() []string {
	names := make([]string, 0, len(builtinAgents))
	for name := range builtinAgents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bindings resolves the configured agents to an ordered binding list. An
// explicit path wins over the built-in default; an agent that has neither is
// an error.
func Bindings(cfg *config.Config) ([]engine.Binding, error) {
	bindings := make([]engine.Binding, 0, len(cfg.Agents))
	for _, ag := range cfg.Agents {
		path := ag.Path
		if path == "" {
			builtin, err := MirrorFor(ag.Name)
			if err != nil {
				return nil, err
			}
			path = builtin
		}
		bindings = append(bindings, engine.Binding{Name: ag.Name, MirrorPath: path})
	}
	return bindings, nil
}
