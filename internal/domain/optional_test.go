package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type body struct {
		Deadline Optional[time.Time] `json:"deadline"`
		Note     Optional[string]    `json:"note"`
	}

	t.Run("поле отсутствует", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.False(t, b.Deadline.Set)
		assert.False(t, b.Note.Set)
	})

	t.Run("явный null", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"deadline":null,"note":null}`), &b))
		assert.True(t, b.Deadline.Set)
		assert.Nil(t, b.Deadline.Value)
		assert.True(t, b.Note.Set)
		assert.Nil(t, b.Note.Value)
	})

	t.Run("значение", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2030-01-01T00:00:00Z","note":"x"}`), &b))
		require.NotNil(t, b.Deadline.Value)
		assert.Equal(t, 2030, b.Deadline.Value.Year())
		assert.Equal(t, "x", *b.Note.Value)
	})

	t.Run("неверный тип", func(t *testing.T) {
		var b body
		assert.Error(t, json.Unmarshal([]byte(`{"deadline":42}`), &b))
	})
}

func TestTaskPatch_Apply(t *testing.T) {
	deadline := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	task := &Task{Title: "Task", Description: "d", Deadline: &deadline, GitlabIssueID: "42"}

	TaskPatch{
		Deadline:      Null[time.Time](),
		GitlabIssueID: Some("43"),
	}.Apply(task)

	assert.Nil(t, task.Deadline)
	assert.Equal(t, "d", task.Description)
	assert.Equal(t, "43", task.GitlabIssueID)
	assert.Equal(t, "Task", task.Title)
}
