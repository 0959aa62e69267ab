package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogCmd prints the planning changelog, oldest first.
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the planning changelog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			w, err := openWorkspace()
			if err != nil {
				return err
			}
			events, err := w.repo.ReadChangelog()
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No planning events recorded.")
				return nil
			}
			if limit > 0 && len(events) > limit {
				events = events[len(events)-limit:]
			}
			for _, event := range events {
				line := fmt.Sprintf("%v  %v", event["timestamp"], event["event_type"])
				if id, ok := event["requirement_id"]; ok {
					line += fmt.Sprintf("  %v", id)
				}
				if id, ok := event["pool_id"]; ok {
					line += fmt.Sprintf("  %v", id)
				}
				if from, ok := event["from"]; ok {
					line += fmt.Sprintf("  %v -> %v", from, event["to"])
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 0, "show only the most recent N events")
	return cmd
}
