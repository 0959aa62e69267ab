package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wsjf/internal/planner"
)

// InitCmd creates the planning directory with an empty snapshot.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the planning directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}

			if _, err := os.Stat(w.cfg.BaseDir); err == nil {
				return fmt.Errorf("planning directory %s already exists", w.cfg.BaseDir)
			}

			if err := w.mutate(func(*planner.Board) error { return nil }); err != nil {
				return err
			}
			fmt.Printf("Initialized planning directory %s\n", w.cfg.BaseDir)
			return nil
		},
	}
}
