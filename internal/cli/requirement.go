package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wsjf/internal/core"
	"wsjf/internal/planner"
	"wsjf/pkg/schema"
)

// AddCmd creates a requirement in the backlog.
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a requirement to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, _ := cmd.Flags().GetString("value")
			criticality, _ := cmd.Flags().GetString("criticality")
			deadline, _ := cmd.Flags().GetString("deadline")
			effort, _ := cmd.Flags().GetFloat64("effort")
			stage, _ := cmd.Flags().GetString("stage")
			submitter, _ := cmd.Flags().GetString("submitter")
			team, _ := cmd.Flags().GetString("team")

			req := schema.Requirement{
				Name:            args[0],
				Submitter:       submitter,
				BusinessTeam:    team,
				BusinessValue:   schema.BusinessValue(value),
				TimeCriticality: schema.TimeCriticality(criticality),
				HardDeadline:    deadline != "",
				DeadlineDate:    deadline,
				EffortDays:      effort,
				DeliveryStage:   schema.DeliveryStage(stage),
			}

			w, err := openWorkspace()
			if err != nil {
				return err
			}
			var added schema.Requirement
			err = w.mutate(func(b *planner.Board) error {
				added, err = b.AddRequirement(req)
				return err
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Added %s: %s (score %d, %s)\n",
				added.ID, added.Name, added.DisplayScore, renderStars(added.Stars))
			return nil
		},
	}

	cmd.Flags().String("value", string(schema.BVLocal),
		"business value tier: local, visible, core_lever, strategic_platform")
	cmd.Flags().String("criticality", string(schema.TCAnytime),
		"time criticality: anytime, quarter_window, month_hard_window")
	cmd.Flags().String("deadline", "", "hard deadline date (YYYY-MM-DD)")
	cmd.Flags().Float64("effort", 0, "estimated effort in days")
	cmd.Flags().String("stage", string(schema.StagePending),
		"delivery stage (pending until technical evaluation)")
	cmd.Flags().String("submitter", "", "who raised the requirement")
	cmd.Flags().String("team", "", "owning business team")
	return cmd
}

// ListCmd prints the backlog and every sprint pool with scores.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the backlog and sprint pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			return w.view(func(snap schema.Snapshot) error {
				board := planner.NewBoard(snap)

				fmt.Println("Backlog")
				backlog := board.Backlog()
				if len(backlog) == 0 {
					fmt.Println("  (empty)")
				}
				for _, r := range backlog {
					fmt.Println(renderRequirement(r))
				}

				for _, p := range board.Pools() {
					fmt.Println()
					fmt.Println(renderPoolHeader(p))
					if len(p.Requirements) == 0 {
						fmt.Println("  (empty)")
					}
					for _, r := range p.Requirements {
						fmt.Println(renderRequirement(r))
					}
				}
				return nil
			})
		},
	}
}

// MoveCmd relocates a requirement between the backlog and sprint pools.
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [requirement-id] [from] [to]",
		Short: "Move a requirement between the backlog and sprint pools",
		Long: `Move a requirement from one location to another. Locations are
"backlog" or a pool ID. Moving into a pool requires the requirement to
have completed technical evaluation; moving back to the backlog is
always allowed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			err = w.mutate(func(b *planner.Board) error {
				return b.Move(args[0], parseLocation(args[1]), parseLocation(args[2]))
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Moved %s: %s -> %s\n", args[0], args[1], args[2])
			return nil
		},
	}
}

// RemoveCmd deletes a requirement from wherever it lives.
func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [requirement-id]",
		Short: "Remove a requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			err = w.mutate(func(b *planner.Board) error {
				return b.DeleteRequirement(args[0])
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

// StageCmd advances a requirement to the next delivery stage, or sets an
// explicit one with --set.
func StageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage [requirement-id]",
		Short: "Advance a requirement's delivery stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit, _ := cmd.Flags().GetString("set")

			w, err := openWorkspace()
			if err != nil {
				return err
			}
			var from, to schema.DeliveryStage
			err = w.mutate(func(b *planner.Board) error {
				snap := b.Snapshot()
				for _, r := range snap.AllRequirements() {
					if r.ID != args[0] {
						continue
					}
					from = r.DeliveryStage
					if explicit != "" {
						to = schema.DeliveryStage(explicit)
					} else {
						to = from.NextStage()
						if to == "" {
							return fmt.Errorf("%s is already at the final stage (%s)", r.ID, from)
						}
					}
					r.DeliveryStage = to
					return b.UpdateRequirement(r)
				}
				return &core.NotFoundError{RequirementID: args[0]}
			})
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("%s: %s -> %s\n", args[0], from, to)
			return nil
		},
	}
	cmd.Flags().String("set", "", "set an explicit stage instead of advancing")
	return cmd
}
