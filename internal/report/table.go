// Package report renders fetched worklog rows and aggregated totals for
// the console or CSV export.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ciscomonkey/jira-scripts/internal/worklog"
)

// Row is one worklog line in a report.
type Row struct {
	Started  time.Time
	IssueKey string
	Summary  string
	Author   string
	Seconds  int64
	Comment  string
}

// SortByIssue orders rows by issue key, then start time.
func SortByIssue(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].IssueKey != rows[j].IssueKey {
			return rows[i].IssueKey < rows[j].IssueKey
		}
		return rows[i].Started.Before(rows[j].Started)
	})
}

// SortByDate orders rows chronologically.
func SortByDate(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Started.Before(rows[j].Started)
	})
}

// PrintTable writes the rows as a fixed-width table.
func PrintTable(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "%-12s%-15s%-40s%-10s%s\n", "Date", "Issue", "Summary", "Time", "Comment")
	fmt.Fprintf(w, "%s%s%s%s%s\n",
		strings.Repeat("-", 12), strings.Repeat("-", 15), strings.Repeat("-", 40),
		strings.Repeat("-", 10), strings.Repeat("-", 30))
	for _, row := range rows {
		summary := row.Summary
		if len(summary) > 38 {
			summary = summary[:38]
		}
		fmt.Fprintf(w, "%-12s%-15s%-40s%-10s%s\n",
			row.Started.Format("2006-01-02"), row.IssueKey, summary,
			worklog.FormatDuration(row.Seconds), row.Comment)
	}
}

// PrintSummary writes per-group totals followed by the grand total footer.
func PrintSummary(w io.Writer, result worklog.Result) {
	keys := make([]worklog.Key, 0, len(result.Totals))
	for key := range result.Totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Author != keys[j].Author {
			return keys[i].Author < keys[j].Author
		}
		return keys[i].IssueKey < keys[j].IssueKey
	})

	for _, key := range keys {
		label := key.Author
		if key.IssueKey != "" {
			label = key.Author + "\t" + key.IssueKey
		}
		fmt.Fprintf(w, "%s\t%s\n", label, worklog.FormatDuration(result.Totals[key]))
	}

	total := result.Total()
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	fmt.Fprintf(w, "Total time logged: %s (%d minutes)\n", worklog.FormatDuration(total), total/60)
	fmt.Fprintf(w, "Number of work log entries: %d\n", result.Count)
}
