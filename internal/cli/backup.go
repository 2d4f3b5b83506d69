package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a JSON backup of tasks, goals, settings and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := buildPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		payload, err := p.ExportBackup()
		if err != nil {
			return fmt.Errorf("export backup: %w", err)
		}
		if err := os.WriteFile(args[0], payload, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("exported backup to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace planner state from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		p, cleanup, err := buildPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := p.ImportBackup(cmd.Context(), payload); err != nil {
			return fmt.Errorf("import backup: %w", err)
		}
		fmt.Printf("imported backup from %s\n", args[0])
		return nil
	},
}
