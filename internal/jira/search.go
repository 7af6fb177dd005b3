package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const searchPageSize = 100

type searchPage struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// SearchIssues runs a JQL query and returns all matching issues, following
// pagination. Only the summary field is requested.
func (c *Client) SearchIssues(ctx context.Context, jql string) ([]Issue, error) {
	var issues []Issue
	startAt := 0
	for {
		query := url.Values{
			"jql":        {jql},
			"fields":     {"summary"},
			"maxResults": {strconv.Itoa(searchPageSize)},
			"startAt":    {strconv.Itoa(startAt)},
		}
		var page searchPage
		if err := c.get(ctx, "/rest/api/3/search", query, &page); err != nil {
			return nil, fmt.Errorf("issue search failed: %w", err)
		}
		issues = append(issues, page.Issues...)
		startAt += len(page.Issues)
		if startAt >= page.Total || len(page.Issues) == 0 {
			return issues, nil
		}
	}
}

// SprintIssuesJQL matches issues in a sprint that carry worklogs by the
// current user.
func SprintIssuesJQL(sprintID int) string {
	return fmt.Sprintf("worklogAuthor = currentUser() AND sprint = %d", sprintID)
}

// WorklogsSinceJQL matches issues with worklogs by the current user on or
// after the given date (YYYY-MM-DD).
func WorklogsSinceJQL(date string) string {
	return fmt.Sprintf("worklogAuthor = currentUser() AND worklogDate >= '%s'", date)
}

// DedupeIssues drops duplicate issue keys, keeping first occurrence. An
// issue can show up once per sprint or board it was searched under.
func DedupeIssues(issues []Issue) []Issue {
	seen := make(map[string]bool, len(issues))
	var unique []Issue
	for _, issue := range issues {
		if seen[issue.Key] {
			continue
		}
		seen[issue.Key] = true
		unique = append(unique, issue)
	}
	return unique
}
