package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ciscomonkey/jira-scripts/cmd/config"
)

var rootCmd = &cobra.Command{
	Use:   "jira-scripts",
	Short: "Worklog reports from Jira sprints",
	Long: `jira-scripts queries your Jira instance for the work you logged during
the current sprint, the previous sprint, or since a date, and prints or
exports an aggregated summary.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(config.ConfigCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(worklogCmd)
	rootCmd.AddCommand(sinceCmd)
}
