// Package worklog holds the pure aggregation step shared by the report
// commands: filter worklog entries to a time window and sum durations per
// group. It does no fetching and no printing, so it can be tested on its
// own against fixed inputs.
package worklog

import (
	"errors"
	"fmt"
	"time"
)

// Entry is one unit of logged work, already fetched and normalized by the
// Jira client. Entries are read-only to the aggregator.
type Entry struct {
	Author   string
	IssueKey string
	Started  time.Time
	Duration int64 // seconds
}

// Window is a half-open interval [Start, End). An entry landing exactly on
// End belongs to the next window, so adjacent sprint windows never count
// the same entry twice.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Since returns a window from t up to now.
func Since(t time.Time) Window {
	return Window{Start: t, End: time.Now()}
}

// GroupBy selects the grouping key for aggregation.
type GroupBy int

const (
	// GroupByAuthor groups entries per author.
	GroupByAuthor GroupBy = iota
	// GroupByAuthorIssue groups entries per author and issue key.
	GroupByAuthorIssue
)

// Key identifies one group in a Result. IssueKey is empty when grouping by
// author only.
type Key struct {
	Author   string
	IssueKey string
}

// Result maps each group to its total logged seconds. Count is the number
// of entries that fell inside the window.
type Result struct {
	Totals map[Key]int64
	Count  int
}

// Total returns the sum over all groups.
func (r Result) Total() int64 {
	var total int64
	for _, secs := range r.Totals {
		total += secs
	}
	return total
}

// ErrInvalidWindow reports a window whose start is after its end.
var ErrInvalidWindow = errors.New("worklog: window start is after end")

// InvalidEntryError reports an entry with a negative duration. Negative
// durations mean the upstream data is broken, so they are rejected rather
// than clamped or skipped.
type InvalidEntryError struct {
	Entry Entry
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("worklog: entry for %s on %s has negative duration %d",
		e.Entry.IssueKey, e.Entry.Author, e.Entry.Duration)
}

// Aggregate filters entries to the window and sums durations per group.
// It is a pure function: same inputs give the same Result regardless of
// entry order, and nothing is mutated or logged. An empty input yields an
// empty Result.
func Aggregate(entries []Entry, window Window, groupBy GroupBy) (Result, error) {
	if window.Start.After(window.End) {
		return Result{}, ErrInvalidWindow
	}
	for i := range entries {
		if entries[i].Duration < 0 {
			return Result{}, &InvalidEntryError{Entry: entries[i]}
		}
	}

	result := Result{Totals: make(map[Key]int64)}
	for _, e := range entries {
		if !window.Contains(e.Started) {
			continue
		}
		key := Key{Author: e.Author}
		if groupBy == GroupByAuthorIssue {
			key.IssueKey = e.IssueKey
		}
		result.Totals[key] += e.Duration
		result.Count++
	}
	return result, nil
}

// Filter returns the entries whose Started falls inside the window,
// preserving input order. Used by the listing output, which shows the raw
// rows next to the aggregated summary.
func Filter(entries []Entry, window Window) []Entry {
	var kept []Entry
	for _, e := range entries {
		if window.Contains(e.Started) {
			kept = append(kept, e)
		}
	}
	return kept
}
