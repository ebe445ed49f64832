package cmd

import (
	"github.com/GowayLee/agent-sync/pkg/agentsync"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the link state of every configured agent",
	Long: `Classifies every configured agent mirror against the canonical file:

  linked      mirror resolves to the canonical file (or is byte-identical)
  not-linked  mirror is a regular file with diverged content
  missing     canonical file or mirror does not exist
  broken      mirror cannot be confirmed to reference the canonical file

Read-only: status never modifies anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		infos, err := client.Status()
		if err != nil {
			return err
		}

		info("canonical: %s (%s)", client.Canonical(), client.LinkKind())
		for _, li := range infos {
			info("  %-12s %-12s %s", li.AgentName, li.Status.Kind, li.MirrorPath)
			if li.Status.Kind == agentsync.KindLinked {
				detail("-> %s", li.Status.ResolvedTarget)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
