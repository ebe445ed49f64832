package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "List agent mirrors holding content a repair would merge",
	Long: `Scans every configured agent mirror and lists the ones that have drifted
from the canonical file and still hold real (non-whitespace) content. These
are the mirrors 'agent-sync repair' would fold into the canonical file.

Exits with status 1 if any conflicts are found, so the scan can gate scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		conflicts, err := client.Conflicts()
		if err != nil {
			return err
		}

		if len(conflicts) == 0 {
			info("No conflicts.")
			return nil
		}

		info("Mirrors with content that a repair would merge:")
		for _, c := range conflicts {
			info("  %-12s %s", c.Agent, c.MirrorPath)
		}
		return fmt.Errorf("%d conflict(s) found", len(conflicts))
	},
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}
