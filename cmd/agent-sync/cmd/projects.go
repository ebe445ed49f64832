package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/GowayLee/agent-sync/internal/registry"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the global catalog of agent-sync projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(registry.DefaultPath())
		if err != nil {
			return err
		}
		if len(reg.Projects) == 0 {
			info("No registered projects.")
			return nil
		}
		for _, p := range reg.Projects {
			info("%s", p.Root)
			detail("canonical: %s, registered: %s", p.Canonical, p.RegisteredAt.Format(time.RFC3339))
		}
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <dir>",
	Short: "Register a project directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}

		regPath := registry.DefaultPath()
		reg, err := registry.Load(regPath)
		if err != nil {
			return err
		}
		if !reg.Add(root, "", time.Now()) {
			info("%s is already registered", root)
			return nil
		}
		if err := registry.Save(regPath, reg); err != nil {
			return err
		}
		info("Registered %s", root)
		return nil
	},
}

var projectsRemoveCmd = &cobra.Command{
	Use:   "remove <dir>",
	Short: "Deregister a project directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}

		regPath := registry.DefaultPath()
		reg, err := registry.Load(regPath)
		if err != nil {
			return err
		}
		if !reg.Remove(root) {
			return fmt.Errorf("%s is not registered", root)
		}
		if err := registry.Save(regPath, reg); err != nil {
			return err
		}
		info("Removed %s", root)
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsRemoveCmd)
	rootCmd.AddCommand(projectsCmd)
}
