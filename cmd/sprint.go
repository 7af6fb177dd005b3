package cmd

import (
	"fmt"

	"github.com/ciscomonkey/jira-scripts/internal/config"
	"github.com/ciscomonkey/jira-scripts/internal/jira"

	"github.com/spf13/cobra"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
	Long:  `Commands for inspecting Jira sprints.`,
}

var sprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sprints for a specific board",
	Long:  `Lists all sprints for a specified Jira board. Uses the default board from config if not specified.`,
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

		boardName, _ := cmd.Flags().GetString("board")
		if boardName == "" {
			boardName = cfg.BoardName
		}
		if boardName == "" {
			fmt.Println("Error: Board name not specified. Please use the --board flag or set a default board using 'jira-scripts config set board [board_name]'")
			return
		}

		ctx := cmd.Context()
		client := jira.NewClient(cfg)

		board, err := client.BoardByName(ctx, boardName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sprints, err := client.AllSprints(ctx, board.ID)
		if err != nil {
			fmt.Printf("Error listing sprints for board '%s': %v\n", boardName, err)
			return
		}

		fmt.Printf("Sprints in board '%s':\n", boardName)
		fmt.Printf("%-30s\t%-8s\t%-12s\t%s\n", "NAME", "STATE", "START", "END")
		for _, sprint := range sprints {
			start, end := "-", "-"
			if !sprint.StartDate.IsZero() {
				start = sprint.StartDate.Format("2006-01-02")
			}
			if !sprint.EndDate.IsZero() {
				end = sprint.EndDate.Format("2006-01-02")
			}
			fmt.Printf("%-30s\t%-8s\t%-12s\t%s\n", sprint.Name, sprint.State, start, end)
		}
	},
}

func init() {
	sprintCmd.AddCommand(sprintListCmd)
	sprintListCmd.Flags().StringP("board", "b", "", "Board name to list sprints from")
}
