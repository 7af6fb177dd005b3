package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ciscomonkey/jira-scripts/internal/config"
	"github.com/ciscomonkey/jira-scripts/internal/jira"
	"github.com/ciscomonkey/jira-scripts/internal/report"
	"github.com/ciscomonkey/jira-scripts/internal/worklog"

	"github.com/spf13/cobra"
)

const fallbackDays = 14

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Show your worklogs for the current active sprint",
	Long: `Scans all boards for active sprints, finds issues you logged work on in
the earliest-started active sprint, and prints the worklogs with a total.
Falls back to the last 14 days when no active sprint is found.`,
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
			sprints, err := client.Sprints(ctx, board.ID, jira.SprintStateActive)
			if err != nil {
				fmt.Printf("Warning: Could not fetch sprints for board %s: %v\n", board.Name, err)
				continue
			}
			candidates = append(candidates, sprints...)
		}

		var window worklog.Window
		var issues []jira.Issue

		sprint, found := jira.ActiveSprint(candidates)
		if found {
			window, err = sprint.Window()
			if err != nil {
				fmt.Printf("Warning: %v, falling back to last %d days\n", err, fallbackDays)
				found = false
			} else {
				issues, err = client.SearchIssues(ctx, jira.SprintIssuesJQL(sprint.ID))
				if err != nil {
					fmt.Printf("Error fetching issues: %v\n", err)
					return
				}
			}
		}

		if !found || len(issues) == 0 {
			fmt.Printf("No issues found in any active sprint, falling back to last %d days\n", fallbackDays)
			start := time.Now().UTC().AddDate(0, 0, -fallbackDays)
			window = worklog.Since(start)
			issues, err = client.SearchIssues(ctx, jira.WorklogsSinceJQL(start.Format("2006-01-02")))
			if err != nil {
				fmt.Printf("Error fetching issues: %v\n", err)
				return
			}
			fmt.Printf("\nWorklogs from the past %d days (fallback):\n", fallbackDays)
		} else {
			fmt.Printf("\nWorklogs from the current active sprint (%s):\n", sprint.Name)
		}

		issues = jira.DedupeIssues(issues)
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
	addReportFlags(workCmd)
}
