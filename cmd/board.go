package cmd

import (
	"fmt"

	"github.com/ciscomonkey/jira-scripts/internal/config"
	"github.com/ciscomonkey/jira-scripts/internal/jira"

	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage agile boards",
	Long:  `Commands for inspecting Jira agile boards.`,
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available agile boards",
	Long:  `Lists all agile boards visible to you in your Jira instance.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		boards, err := jira.NewClient(cfg).Boards(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing boards: %v\n", err)
			return
		}

		fmt.Printf("%-30s\t%s\n", "BOARD NAME", "ID")
		for _, board := range boards {
			fmt.Printf("%-30s\t%d\n", board.Name, board.ID)
		}
	},
}

func init() {
	boardCmd.AddCommand(boardListCmd)
}
