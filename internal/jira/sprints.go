package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type boardPage struct {
	StartAt int     `json:"startAt"`
	IsLast  bool    `json:"isLast"`
	Values  []Board `json:"values"`
}

type sprintPage struct {
	StartAt int      `json:"startAt"`
	IsLast  bool     `json:"isLast"`
	Values  []Sprint `json:"values"`
}

// Boards fetches all agile boards, following pagination.
func (c *Client) Boards(ctx context.Context) ([]Board, error) {
	var boards []Board
	startAt := 0
	for {
		query := url.Values{"startAt": {strconv.Itoa(startAt)}}
		var page boardPage
		if err := c.get(ctx, "/rest/agile/1.0/board", query, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch boards: %w", err)
		}
		boards = append(boards, page.Values...)
		if page.IsLast || len(page.Values) == 0 {
			return boards, nil
		}
		startAt += len(page.Values)
	}
}

// BoardByName finds a board by its exact name.
func (c *Client) BoardByName(ctx context.Context, name string) (Board, error) {
	boards, err := c.Boards(ctx)
	if err != nil {
		return Board{}, err
	}
	for _, b := range boards {
		if b.Name == name {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("board '%s' not found", name)
}

// Sprints fetches the sprints of a board in the given state, following
// pagination.
func (c *Client) Sprints(ctx context.Context, boardID int, state string) ([]Sprint, error) {
	var sprints []Sprint
	startAt := 0
	path := fmt.Sprintf("/rest/agile/1.0/board/%d/sprint", boardID)
	for {
		query := url.Values{
			"state":   {state},
			"startAt": {strconv.Itoa(startAt)},
		}
		var page sprintPage
		if err := c.get(ctx, path, query, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch %s sprints for board %d: %w", state, boardID, err)
		}
		sprints = append(sprints, page.Values...)
		if page.IsLast || len(page.Values) == 0 {
			return sprints, nil
		}
		startAt += len(page.Values)
	}
}

// AllSprints fetches the active, closed and future sprints of a board.
func (c *Client) AllSprints(ctx context.Context, boardID int) ([]Sprint, error) {
	var all []Sprint
	for _, state := range []string{SprintStateActive, SprintStateClosed, SprintStateFuture} {
		sprints, err := c.Sprints(ctx, boardID, state)
		if err != nil {
			return nil, err
		}
		all = append(all, sprints...)
	}
	return all, nil
}

// ActiveSprint picks the active sprint to report on. With multiple active
// sprints across boards, the one that started first wins.
func ActiveSprint(sprints []Sprint) (Sprint, bool) {
	var best Sprint
	found := false
	for _, s := range sprints {
		if s.State != SprintStateActive || s.StartDate.IsZero() {
			continue
		}
		if !found || s.StartDate.Before(best.StartDate.Time) {
			best = s
			found = true
		}
	}
	return best, found
}

// PreviousSprint picks the most recently ended closed sprint.
func PreviousSprint(sprints []Sprint) (Sprint, bool) {
	var best Sprint
	found := false
	for _, s := range sprints {
		if s.State != SprintStateClosed || s.EndDate.IsZero() {
			continue
		}
		if !found || s.EndDate.After(best.EndDate.Time) {
			best = s
			found = true
		}
	}
	return best, found
}
