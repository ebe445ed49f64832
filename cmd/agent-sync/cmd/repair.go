package cmd

import (
	"fmt"

	"github.com/GowayLee/agent-sync/internal/fsprobe"
	"github.com/spf13/cobra"
)

var repairForce bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Restore the link invariant for every configured agent",
	Long: `Reconciles every configured agent mirror with the canonical file:

  linked      left alone
  missing     link created
  not-linked,
  broken      mirror content merged into the canonical file (nothing is
              discarded), the mirror replaced by a fresh link

Repair refuses to run when the pre-flight scan finds mirrors holding real
content, so drifted work is never folded in by accident. Review them with
'agent-sync conflicts' and re-run with --force to proceed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if !fsprobe.Exists(client.Canonical()) {
			return fmt.Errorf("canonical file %s does not exist — run 'agent-sync link' first", client.Canonical())
		}

		conflicts, err := client.Conflicts()
		if err != nil {
			return err
		}
		if len(conflicts) > 0 && !repairForce {
			errorf("%d mirror(s) hold content that a repair would merge:", len(conflicts))
			for _, c := range conflicts {
				errorf("  %-12s %s", c.Agent, c.MirrorPath)
			}
			return fmt.Errorf("refusing to repair — re-run with --force to merge the content above")
		}

		result, err := client.Repair()
		if err != nil {
			return err
		}

		printResult(result, "repaired")
		if len(result.Failures) > 0 {
			return fmt.Errorf("%d of %d agents failed", len(result.Failures), len(result.Failures)+len(result.Successes))
		}
		return nil
	},
}

func init() {
	repairCmd.Flags().BoolVar(&repairForce, "force", false, "repair even when drifted mirrors hold content")
	rootCmd.AddCommand(repairCmd)
}
