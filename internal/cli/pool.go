package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wsjf/internal/planner"
	"wsjf/pkg/schema"
)

// PoolCmd groups the sprint pool subcommands.
func PoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage sprint pools",
	}
	cmd.AddCommand(poolAddCmd())
	cmd.AddCommand(poolListCmd())
	cmd.AddCommand(poolRemoveCmd())
	return cmd
}

func poolAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create an empty sprint pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			days, _ := cmd.Flags().GetFloat64("days")
			bugPct, _ := cmd.Flags().GetInt("bug-reserve")
			refactorPct, _ := cmd.Flags().GetInt("refactor-reserve")
			otherPct, _ := cmd.Flags().GetInt("other-reserve")

			pool := schema.SprintPool{
				Name:               args[0],
				StartDate:          start,
				EndDate:            end,
				TotalDays:          days,
				BugReservePct:      bugPct,
				RefactorReservePct: refactorPct,
				OtherReservePct:    otherPct,
			}

			w, err := openWorkspace()
			if err != nil {
				return err
			}
			var added schema.SprintPool
			err = w.mutate(func(b *planner.Board) error {
				added, err = b.AddPool(pool)
				return err
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Created %s: %s (%.1f days available)\n",
				added.ID, added.Name, added.AvailableDays())
			return nil
		},
	}

	cmd.Flags().String("start", "", "sprint start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "sprint end date (YYYY-MM-DD)")
	cmd.Flags().Float64("days", 0, "total capacity in person-days")
	cmd.Flags().Int("bug-reserve", 0, "percent of capacity reserved for bugs")
	cmd.Flags().Int("refactor-reserve", 0, "percent of capacity reserved for refactoring")
	cmd.Flags().Int("other-reserve", 0, "percent of capacity reserved for other work")
	return cmd
}

func poolListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sprint pools with capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			return w.view(func(snap schema.Snapshot) error {
				if len(snap.Pools) == 0 {
					fmt.Println("No sprint pools.")
					return nil
				}
				for _, p := range snap.Pools {
					fmt.Println(renderPoolHeader(p))
					fmt.Printf("  %d requirement(s), %.1f of %.1f days committed\n",
						len(p.Requirements), p.CommittedDays(), p.AvailableDays())
				}
				return nil
			})
		},
	}
}

func poolRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [pool-id]",
		Short: "Remove a sprint pool, draining members to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			err = w.mutate(func(b *planner.Board) error {
				return b.DeletePool(args[0])
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Removed %s; members returned to the backlog\n", args[0])
			return nil
		},
	}
}
