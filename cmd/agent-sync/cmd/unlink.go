package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove every configured agent's mirror entry",
	Long: `Removes the mirror entry for every configured agent, link or not. The
canonical file is left untouched. Absent mirrors are reported as failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Unlink()
		if err != nil {
			return err
		}

		printResult(result, "unlinked")
		if len(result.Failures) > 0 {
			return fmt.Errorf("%d of %d agents failed", len(result.Failures), len(result.Failures)+len(result.Successes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unlinkCmd)
}
