package jira

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sprintAt(name, state string, start, end time.Time) Sprint {
	return Sprint{Name: name, State: state, StartDate: Time{Time: start}, EndDate: Time{Time: end}}
}

func TestActiveSprint(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("earliest start wins across boards", func(t *testing.T) {
		sprints := []Sprint{
			sprintAt("Sprint B", SprintStateActive, base.AddDate(0, 0, 3), base.AddDate(0, 0, 17)),
			sprintAt("Sprint A", SprintStateActive, base, base.AddDate(0, 0, 14)),
			sprintAt("Old", SprintStateClosed, base.AddDate(0, 0, -14), base),
		}
		sprint, found := ActiveSprint(sprints)
		require.True(t, found)
		assert.Equal(t, "Sprint A", sprint.Name)
	})

	t.Run("ignores active sprints without dates", func(t *testing.T) {
		sprints := []Sprint{{Name: "No dates", State: SprintStateActive}}
		_, found := ActiveSprint(sprints)
		assert.False(t, found)
	})

	t.Run("none active", func(t *testing.T) {
		_, found := ActiveSprint([]Sprint{sprintAt("Old", SprintStateClosed, base, base.AddDate(0, 0, 14))})
		assert.False(t, found)
	})
}

func TestPreviousSprint(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	sprints := []Sprint{
		sprintAt("Sprint 10", SprintStateClosed, base.AddDate(0, 0, -42), base.AddDate(0, 0, -28)),
		sprintAt("Sprint 11", SprintStateClosed, base.AddDate(0, 0, -28), base.AddDate(0, 0, -14)),
		sprintAt("Sprint 12", SprintStateActive, base.AddDate(0, 0, -14), base),
	}

	sprint, found := PreviousSprint(sprints)
	require.True(t, found)
	assert.Equal(t, "Sprint 11", sprint.Name)

	_, found = PreviousSprint(nil)
	assert.False(t, found)
}

func TestDedupeIssues(t *testing.T) {
	issues := []Issue{issue("PROJ-1", "a"), issue("PROJ-2", "b"), issue("PROJ-1", "a again")}
	unique := DedupeIssues(issues)
	require.Len(t, unique, 2)
	assert.Equal(t, "a", unique[0].Fields.Summary)
}

func TestJQLBuilders(t *testing.T) {
	assert.Equal(t, "worklogAuthor = currentUser() AND sprint = 42", SprintIssuesJQL(42))
	assert.Equal(t, "worklogAuthor = currentUser() AND worklogDate >= '2024-03-01'", WorklogsSinceJQL("2024-03-01"))
}
