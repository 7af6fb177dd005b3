package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const (
	worklogPageSize     = 100
	worklogFetchWorkers = 5
)

type worklogPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Worklogs   []Worklog `json:"worklogs"`
}

// IssueWorklogs pairs an issue with its fetched worklogs.
type IssueWorklogs struct {
	Issue    Issue
	Worklogs []Worklog
}

// Worklogs fetches all worklogs of one issue, following pagination.
func (c *Client) Worklogs(ctx context.Context, issueKey string) ([]Worklog, error) {
	var logs []Worklog
	startAt := 0
	path := fmt.Sprintf("/rest/api/3/issue/%s/worklog", issueKey)
	for {
		query := url.Values{
			"maxResults": {strconv.Itoa(worklogPageSize)},
			"startAt":    {strconv.Itoa(startAt)},
		}
		var page worklogPage
		if err := c.get(ctx, path, query, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch worklogs for %s: %w", issueKey, err)
		}
		logs = append(logs, page.Worklogs...)
		startAt += len(page.Worklogs)
		if startAt >= page.Total || len(page.Worklogs) == 0 {
			return logs, nil
		}
	}
}

// WorklogsForIssues fetches worklogs for every issue with a bounded number
// of concurrent requests. Results keep the order of the input issues.
func (c *Client) WorklogsForIssues(ctx context.Context, issues []Issue) ([]IssueWorklogs, error) {
	results := make([]IssueWorklogs, len(issues))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(worklogFetchWorkers)

	for i, issue := range issues {
		i, issue := i, issue
		g.Go(func() error {
			logs, err := c.Worklogs(ctx, issue.Key)
			if err != nil {
				return err
			}
			results[i] = IssueWorklogs{Issue: issue, Worklogs: logs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
