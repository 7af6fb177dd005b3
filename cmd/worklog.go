package cmd

import (
	"fmt"
	"os"

	"github.com/ciscomonkey/jira-scripts/internal/config"
	"github.com/ciscomonkey/jira-scripts/internal/jira"
	"github.com/ciscomonkey/jira-scripts/internal/report"

	"github.com/spf13/cobra"
)

var worklogCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Show your worklogs for the previous sprint",
	Long: `Scans all boards for closed sprints, picks the most recently ended one,
and prints the worklogs you logged during it with a total.`,
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

		groupBy, err := groupByFromFlag(cmd.Flag("group-by").Value.String())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		allAuthors, _ := cmd.Flags().GetBool("all-authors")

		ctx := cmd.Context()
		client := jira.NewClient(cfg)

		boards, err := client.Boards(ctx)
		if err != nil {
			fmt.Printf("Error fetching boards: %v\n", err)
			return
		}

		var candidates []jira.Sprint
		for _, board := range boards {
			fmt.Printf("Checking board: %s (ID: %d)\n", board.Name, board.ID)
			sprints, err := client.Sprints(ctx, board.ID, jira.SprintStateClosed)
			if err != nil {
				fmt.Printf("Warning: Could not fetch sprints for board %s: %v\n", board.Name, err)
				continue
			}
			candidates = append(candidates, sprints...)
		}

		sprint, found := jira.PreviousSprint(candidates)
		if !found {
			fmt.Println("Error: No closed sprints found on any board")
			return
		}

		window, err := sprint.Window()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		issues, err := client.SearchIssues(ctx, jira.SprintIssuesJQL(sprint.ID))
		if err != nil {
			fmt.Printf("Error fetching issues: %v\n", err)
			return
		}
		issues = jira.DedupeIssues(issues)

		fmt.Printf("\nWorklogs from the previous sprint (%s):\n", sprint.Name)
		fmt.Printf("Found a total of %d unique issues with worklogs\n\n", len(issues))

		rows, result, err := collectReport(ctx, client, issues, window, groupBy, cfg.Username, allAuthors)
		if err != nil {
			fmt.Printf("Error collecting worklogs: %v\n", err)
			return
		}

		report.SortByIssue(rows)
		report.PrintTable(os.Stdout, rows)
		fmt.Println()
		report.PrintSummary(os.Stdout, result)
	},
}

func init() {
	addReportFlags(worklogCmd)
}
