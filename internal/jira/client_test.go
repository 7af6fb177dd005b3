package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		BaseURL:    srv.URL,
		Username:   "me@example.com",
		Token:      "secret-token",
		HTTPClient: srv.Client(),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClientAuthAndErrors(t *testing.T) {
	t.Run("sends basic auth", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "me@example.com", user)
			assert.Equal(t, "secret-token", pass)
			writeJSON(t, w, boardPage{IsLast: true})
		}))

		_, err := client.Boards(context.Background())
		require.NoError(t, err)
	})

	t.Run("non-200 becomes error with body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"errorMessages":["no access"]}`, http.StatusForbidden)
		}))

		_, err := client.Boards(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "no access")
	})
}

func TestBoardsPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/agile/1.0/board", r.URL.Path)
		startAt, _ := strconv.Atoi(r.URL.Query().Get("startAt"))
		switch startAt {
		case 0:
			writeJSON(t, w, boardPage{Values: []Board{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}})
		case 2:
			writeJSON(t, w, boardPage{IsLast: true, Values: []Board{{ID: 3, Name: "Gamma"}}})
		default:
			t.Fatalf("unexpected startAt %d", startAt)
		}
	}))

	boards, err := client.Boards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.Equal(t, "Gamma", boards[2].Name)
}

func TestBoardByName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, boardPage{IsLast: true, Values: []Board{{ID: 7, Name: "Team Board"}}})
	}))

	board, err := client.BoardByName(context.Background(), "Team Board")
	require.NoError(t, err)
	assert.Equal(t, 7, board.ID)

	_, err = client.BoardByName(context.Background(), "Missing")
	assert.ErrorContains(t, err, "not found")
}

func TestSprints(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/agile/1.0/board/7/sprint", r.URL.Path)
		require.Equal(t, "active", r.URL.Query().Get("state"))
		writeJSON(t, w, sprintPage{IsLast: true, Values: []Sprint{{
			ID: 42, Name: "Sprint 12", State: "active",
		}}})
	}))

	sprints, err := client.Sprints(context.Background(), 7, SprintStateActive)
	require.NoError(t, err)
	require.Len(t, sprints, 1)
	assert.Equal(t, 42, sprints[0].ID)
}

func TestSearchIssuesPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/api/3/search", r.URL.Path)
		require.Equal(t, "worklogAuthor = currentUser() AND sprint = 42", r.URL.Query().Get("jql"))
		startAt, _ := strconv.Atoi(r.URL.Query().Get("startAt"))
		page := searchPage{Total: 3}
		switch startAt {
		case 0:
			page.Issues = []Issue{issue("PROJ-1", "first"), issue("PROJ-2", "second")}
		case 2:
			page.Issues = []Issue{issue("PROJ-3", "third")}
		default:
			t.Fatalf("unexpected startAt %d", startAt)
		}
		writeJSON(t, w, page)
	}))

	issues, err := client.SearchIssues(context.Background(), SprintIssuesJQL(42))
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, "PROJ-3", issues[2].Key)
}

func issue(key, summary string) Issue {
	var i Issue
	i.Key = key
	i.Fields.Summary = summary
	return i
}

func TestWorklogs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/api/3/issue/PROJ-1/worklog", r.URL.Path)
		writeJSON(t, w, map[string]interface{}{
			"startAt": 0,
			"total":   1,
			"worklogs": []map[string]interface{}{{
				"author":           map[string]string{"emailAddress": "me@example.com", "displayName": "Me"},
				"started":          "2024-03-04T09:30:00.000+0000",
				"timeSpent":        "2h 30m",
				"timeSpentSeconds": 9000,
				"comment": map[string]interface{}{
					"type": "doc",
					"content": []map[string]interface{}{{
						"type": "paragraph",
						"content": []map[string]interface{}{
							{"type": "text", "text": "fixed the"},
							{"type": "text", "text": "flaky test"},
						},
					}},
				},
			}},
		})
	}))

	logs, err := client.Worklogs(context.Background(), "PROJ-1")
	require.NoError(t, err)
	require.Len(t, logs, 1)

	log := logs[0]
	assert.Equal(t, "me@example.com", log.Author.EmailAddress)
	assert.Equal(t, int64(9000), log.TimeSpentSeconds)
	assert.Equal(t, "fixed the flaky test", log.CommentText())
	assert.Equal(t, "2024-03-04T09:30:00Z", log.Started.UTC().Format("2006-01-02T15:04:05Z"))
}

func TestWorklogsForIssues(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"startAt": 0,
			"total":   1,
			"worklogs": []map[string]interface{}{{
				"author":           map[string]string{"emailAddress": "me@example.com"},
				"started":          "2024-03-04T09:30:00.000+0000",
				"timeSpentSeconds": 600,
			}},
		})
	}))

	issues := []Issue{issue("PROJ-1", "a"), issue("PROJ-2", "b"), issue("PROJ-3", "c")}
	batches, err := client.WorklogsForIssues(context.Background(), issues)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	// Results keep input order regardless of fetch interleaving.
	for i, batch := range batches {
		assert.Equal(t, issues[i].Key, batch.Issue.Key)
		require.Len(t, batch.Worklogs, 1)
	}
}
