package cmd

import (
	"context"
	"fmt"

	"github.com/ciscomonkey/jira-scripts/internal/jira"
	"github.com/ciscomonkey/jira-scripts/internal/report"
	"github.com/ciscomonkey/jira-scripts/internal/worklog"

	"github.com/spf13/cobra"
)

// groupByFromFlag maps the --group-by flag value to an aggregation mode.
func groupByFromFlag(value string) (worklog.GroupBy, error) {
	switch value {
	case "author":
		return worklog.GroupByAuthor, nil
	case "issue":
		return worklog.GroupByAuthorIssue, nil
	default:
		return 0, fmt.Errorf("unknown --group-by value %q (want author or issue)", value)
	}
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("group-by", "g", "issue", "Group totals by 'author' or 'issue' (author+issue)")
	cmd.Flags().Bool("all-authors", false, "Include worklogs from all authors, not just your own")
}

// collectReport fetches the worklogs of the given issues, keeps the ones
// inside the window (and, unless allAuthors is set, the ones logged by
// author), and aggregates them.
func collectReport(ctx context.Context, client *jira.Client, issues []jira.Issue,
	window worklog.Window, groupBy worklog.GroupBy, author string, allAuthors bool) ([]report.Row, worklog.Result, error) {

	batches, err := client.WorklogsForIssues(ctx, issues)
	if err != nil {
		return nil, worklog.Result{}, err
	}

	var rows []report.Row
	var entries []worklog.Entry
	for _, batch := range batches {
		for _, log := range batch.Worklogs {
			if !allAuthors && log.Author.EmailAddress != author {
				continue
			}
			seconds, err := log.Seconds()
			if err != nil {
				return nil, worklog.Result{}, fmt.Errorf("worklog on %s: %w", batch.Issue.Key, err)
			}
			entries = append(entries, worklog.Entry{
				Author:   log.Author.EmailAddress,
				IssueKey: batch.Issue.Key,
				Started:  log.Started.Time,
				Duration: seconds,
			})
			if window.Contains(log.Started.Time) {
				rows = append(rows, report.Row{
					Started:  log.Started.Time,
					IssueKey: batch.Issue.Key,
					Summary:  batch.Issue.Fields.Summary,
					Author:   log.Author.EmailAddress,
					Seconds:  seconds,
					Comment:  log.CommentText(),
				})
			}
		}
	}

	result, err := worklog.Aggregate(entries, window, groupBy)
	if err != nil {
		return nil, worklog.Result{}, err
	}
	return rows, result, nil
}
