package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create links for every configured agent",
	Long: `Creates a link for every configured agent pointing at the canonical file.
The canonical file is created empty if it does not exist yet.

Existing mirror files are never overwritten — a mirror that already exists is
reported as a failure. Run 'agent-sync repair' to reconcile existing mirrors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Link()
		if err != nil {
			return err
		}

		printResult(result, "linked")
		if len(result.Failures) > 0 {
			return fmt.Errorf("%d of %d agents failed", len(result.Failures), len(result.Failures)+len(result.Successes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
