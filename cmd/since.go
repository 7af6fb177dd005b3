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

var sinceCmd = &cobra.Command{
	Use:   "since",
	Short: "Show your worklogs since a date",
	Long: `Prints the worklogs you logged on or after a start date, in
chronological order, with a total. Defaults to the past 14 days.`,
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
		startFlag, _ := cmd.Flags().GetString("start")
		days, _ := cmd.Flags().GetInt("days")
		csvPath, _ := cmd.Flags().GetString("csv")

		start, ok := parseStartDate(startFlag)
		if startFlag != "" && !ok {
			fmt.Printf("Error parsing provided date %q\n", startFlag)
			fmt.Printf("Using default date range instead (past %d days)\n", days)
		}
		if !ok {
			start = time.Now().UTC().AddDate(0, 0, -days)
		}

		ctx := cmd.Context()
		client := jira.NewClient(cfg)

		displayDate := start.Format("2006-01-02")
		fmt.Printf("Showing worklogs since %s\n", displayDate)

		issues, err := client.SearchIssues(ctx, jira.WorklogsSinceJQL(displayDate))
		if err != nil {
			fmt.Printf("Error fetching issues: %v\n", err)
			return
		}
		issues = jira.DedupeIssues(issues)
		fmt.Printf("Found a total of %d unique issues with worklogs\n\n", len(issues))

		window := worklog.Since(start)
		rows, result, err := collectReport(ctx, client, issues, window, groupBy, cfg.Username, allAuthors)
		if err != nil {
			fmt.Printf("Error collecting worklogs: %v\n", err)
			return
		}

		report.SortByDate(rows)

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				fmt.Printf("Error creating %s: %v\n", csvPath, err)
				return
			}
			defer f.Close()
			if err := report.WriteCSV(f, rows); err != nil {
				fmt.Printf("Error writing %s: %v\n", csvPath, err)
				return
			}
			fmt.Printf("Wrote %d worklog rows to %s\n", len(rows), csvPath)
		} else {
			report.PrintTable(os.Stdout, rows)
		}

		fmt.Println()
		report.PrintSummary(os.Stdout, result)
	},
}

// parseStartDate accepts the date formats people actually type.
func parseStartDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func init() {
	addReportFlags(sinceCmd)
	sinceCmd.Flags().StringP("start", "s", "", "Start date (e.g. 2024-03-01); defaults to --days ago")
	sinceCmd.Flags().IntP("days", "d", 14, "Days to look back when --start is not given")
	sinceCmd.Flags().String("csv", "", "Write the worklog rows to a CSV file instead of printing them")
}
