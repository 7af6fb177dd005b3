package jira

import (
	"fmt"
	"strings"
	"time"

	"github.com/ciscomonkey/jira-scripts/internal/worklog"
)

// Board is a Jira agile board.
type Board struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Sprint states as reported by the agile API.
const (
	SprintStateActive = "active"
	SprintStateClosed = "closed"
	SprintStateFuture = "future"
)

// Sprint is a time-boxed work period on a board.
type Sprint struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	StartDate Time   `json:"startDate"`
	EndDate   Time   `json:"endDate"`
}

// Window returns the sprint's dates as a half-open aggregation window.
func (s Sprint) Window() (worklog.Window, error) {
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return worklog.Window{}, fmt.Errorf("sprint %q has no start/end dates", s.Name)
	}
	return worklog.Window{Start: s.StartDate.Time, End: s.EndDate.Time}, nil
}

// Issue is a tracked work item. Only the fields the reports need are
// requested from the search API.
type Issue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

// User identifies a worklog author.
type User struct {
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

// Worklog is one logged unit of work on an issue.
type Worklog struct {
	Author           User     `json:"author"`
	Started          Time     `json:"started"`
	TimeSpent        string   `json:"timeSpent"`
	TimeSpentSeconds int64    `json:"timeSpentSeconds"`
	Comment          *ADFNode `json:"comment"`
}

// Seconds returns the logged duration. Older payloads omit
// timeSpentSeconds, in which case the presentation string is parsed.
func (w Worklog) Seconds() (int64, error) {
	if w.TimeSpentSeconds != 0 {
		return w.TimeSpentSeconds, nil
	}
	return worklog.ParseTimeSpent(w.TimeSpent)
}

// CommentText flattens the Atlassian Document Format comment body into
// plain text, joining the text chunks with spaces.
func (w Worklog) CommentText() string {
	if w.Comment == nil {
		return ""
	}
	var chunks []string
	w.Comment.walk(func(n *ADFNode) {
		if n.Type == "text" && n.Text != "" {
			chunks = append(chunks, n.Text)
		}
	})
	return strings.Join(chunks, " ")
}

// ADFNode is a node in an Atlassian Document Format tree.
type ADFNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

func (n *ADFNode) walk(fn func(*ADFNode)) {
	fn(n)
	for i := range n.Content {
		n.Content[i].walk(fn)
	}
}

// Time unmarshals the timestamp formats Jira uses: RFC3339 on the agile
// API and "2006-01-02T15:04:05.000+0000" on worklogs.
type Time struct {
	time.Time
}

const jiraTimeLayout = "2006-01-02T15:04:05.000-0700"

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{jiraTimeLayout, time.RFC3339} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized jira timestamp %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.Format(jiraTimeLayout) + `"`), nil
}
