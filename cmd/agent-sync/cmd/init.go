package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GowayLee/agent-sync/internal/registry"
	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default agent-sync.toml scaffold.
const initTemplate = `# agent-sync configuration
# Docs: https://github.com/GowayLee/agent-sync
version = 1

# The canonical guide file every agent mirror links to.
canonical = "AGENTS.md"

# Link kind: "symlink" (default) or "hardlink".
# link_kind = "symlink"

# Agents, in the order batch operations visit them. Well-known names get a
# default mirror path; set 'path' to override or to add a custom agent.
# Built-in agents: aider, claude, cline, codex, copilot, cursor, gemini, windsurf

[[agents]]
name = "claude"

[[agents]]
name = "gemini"

# [[agents]]
# name = "my-custom-agent"
# path = "docs/MY_AGENT.md"
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter agent-sync.toml configuration",
	Long: `Creates an agent-sync.toml file in the current directory with a commented
template, and registers the project in the global project catalog.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if outPath == "" {
			outPath = "agent-sync.toml"
		}
		abs, err := filepath.Abs(outPath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		if _, err := os.Stat(abs); err == nil && !initForce {
			return fmt.Errorf("%s already exists — use --force to overwrite", outPath)
		}

		if err := os.WriteFile(abs, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		info("Created %s", outPath)

		// Registration is best effort; the config file is the deliverable.
		regPath := registry.DefaultPath()
		reg, err := registry.Load(regPath)
		if err != nil {
			detail("skipping project registration: %v", err)
			return nil
		}
		if reg.Add(filepath.Dir(abs), "AGENTS.md", time.Now()) {
			if err := registry.Save(regPath, reg); err != nil {
				detail("skipping project registration: %v", err)
				return nil
			}
			detail("registered project in %s", regPath)
		}

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
