package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wsjf/internal/check"
	"wsjf/pkg/schema"
)

// CheckCmd runs the consistency checker against the stored snapshot and
// exits non-zero when any finding is reported.
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check planning data consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			return w.view(func(snap schema.Snapshot) error {
				findings := check.Run(snap)
				if len(findings) == 0 {
					fmt.Println(color.GreenString("OK") + ": no consistency findings")
					return nil
				}
				for _, f := range findings {
					fmt.Println(color.RedString("FAIL") + ": " + f.String())
				}
				return fmt.Errorf("%d consistency finding(s)", len(findings))
			})
		},
	}
}
