package cmd

import (
	"fmt"
	"os"

	"github.com/GowayLee/agent-sync/internal/logging"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "agent-sync",
	Short: "Keep per-agent instruction files linked to one canonical guide",
	Long: `agent-sync maintains one canonical guide file (AGENTS.md by default) and
keeps every per-agent instruction file (CLAUDE.md, GEMINI.md, .cursorrules, ...)
pointing at it through filesystem links. It detects drift — a mirror replaced
by independent content — and repairs it without silently discarding anything:
drifted content is merged into the canonical file, never thrown away.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity := 0
		if verbose {
			verbosity = 2
		}
		if quiet {
			verbosity = -1
		}
		logging.Setup(verbosity, noColor)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agent-sync %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: discover upward from cwd)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
