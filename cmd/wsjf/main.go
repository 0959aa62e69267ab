package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wsjf/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wsjf",
		Short: "WSJF requirement prioritization and sprint planning",
		Long: `wsjf scores requirements with weighted-shortest-job-first
prioritization and schedules them into capacity-bounded sprint pools.
Planning data lives in a YAML snapshot under .wsjf/ (override with
WSJF_DIR).`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.MoveCmd())
	rootCmd.AddCommand(cli.RemoveCmd())
	rootCmd.AddCommand(cli.StageCmd())
	rootCmd.AddCommand(cli.PoolCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
