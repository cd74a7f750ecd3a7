package service

import (
	"errors"
	"testing"

	"github.com/bagdasarian/task-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() ([]*domain.Task, []*domain.Team) {
	tasks := []*domain.Task{
		{ID: "t1", Status: domain.StatusDone, UserIDs: []string{"u1"}, Creator: "u1"},
		{ID: "t2", Status: domain.StatusToDo, UserIDs: []string{"u2"}, Creator: "u3"},
		{ID: "t3", Status: domain.StatusInProgress, UserIDs: []string{}, Creator: "u2"},
		{ID: "t4", Status: domain.StatusDone, UserIDs: []string{"u4", "u2"}, Creator: "u4"},
	}
	teams := []*domain.Team{
		{ID: "backend", Members: []string{"u2", "u3"}},
		{ID: "empty", Members: []string{}},
	}
	return tasks, teams
}

func TestFilterTasks_Identity(t *testing.T) {
	tasks, teams := filterFixture()

	result, err := FilterTasks(tasks, teams, FilterParams{})

	require.NoError(t, err)
	assert.Equal(t, tasks, result)

	result, err = FilterTasks(tasks, teams, FilterParams{Union: true})

	require.NoError(t, err)
	assert.Equal(t, tasks, result, "флаг union без фильтров тоже возвращает всё")
}

func TestFilterTasks_Intersection(t *testing.T) {
	tasks, teams := filterFixture()

	tests := []struct {
		name   string
		params FilterParams
		want   []string
	}{
		{
			name:   "по статусу",
			params: FilterParams{Status: domain.StatusDone},
			want:   []string{"t1", "t4"},
		},
		{
			name:   "по команде учитываются только исполнители",
			params: FilterParams{TeamID: "backend"},
			want:   []string{"t2", "t4"},
		},
		{
			name:   "по пользователю учитываются только исполнители",
			params: FilterParams{UserID: "u2"},
			want:   []string{"t2", "t4"},
		},
		{
			name:   "статус и команда",
			params: FilterParams{Status: domain.StatusDone, TeamID: "backend"},
			want:   []string{"t4"},
		},
		{
			name:   "все три фильтра",
			params: FilterParams{Status: domain.StatusToDo, TeamID: "backend", UserID: "u2"},
			want:   []string{"t2"},
		},
		{
			name:   "неизвестный статус ничего не находит",
			params: FilterParams{Status: "Blocked"},
			want:   []string{},
		},
		{
			name:   "команда без участников",
			params: FilterParams{TeamID: "empty"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FilterTasks(tasks, teams, tt.params)

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, taskIDs(result))
		})
	}
}

func TestFilterTasks_Union(t *testing.T) {
	tasks, teams := filterFixture()

	tests := []struct {
		name   string
		params FilterParams
		want   []string
	}{
		{
			name:   "по статусу",
			params: FilterParams{Status: domain.StatusInProgress, Union: true},
			want:   []string{"t3"},
		},
		{
			name:   "по команде учитывается creator",
			params: FilterParams{TeamID: "backend", Union: true},
			want:   []string{"t2", "t3", "t4"},
		},
		{
			name:   "по пользователю учитывается creator",
			params: FilterParams{UserID: "u2", Union: true},
			want:   []string{"t2", "t3", "t4"},
		},
		{
			name:   "объединение статуса и пользователя без дублей",
			params: FilterParams{Status: domain.StatusDone, UserID: "u1", Union: true},
			want:   []string{"t1", "t4"},
		},
		{
			name:   "объединение всех фильтров",
			params: FilterParams{Status: domain.StatusDone, TeamID: "backend", UserID: "u1", Union: true},
			want:   []string{"t1", "t2", "t3", "t4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FilterTasks(tasks, teams, tt.params)

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, taskIDs(result))
		})
	}
}

// Задача, чей creator состоит в команде, а исполнители нет: пересечение её
// исключает, объединение включает. Расхождение режимов - ожидаемое поведение.
func TestFilterTasks_CreatorAsymmetry(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "t1", Status: domain.StatusToDo, UserIDs: []string{"outsider"}, Creator: "lead"},
	}
	teams := []*domain.Team{{ID: "z", Members: []string{"lead"}}}

	intersection, err := FilterTasks(tasks, teams, FilterParams{TeamID: "z"})
	require.NoError(t, err)
	assert.Empty(t, intersection)

	union, err := FilterTasks(tasks, teams, FilterParams{TeamID: "z", Union: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, taskIDs(union))

	intersection, err = FilterTasks(tasks, teams, FilterParams{UserID: "lead"})
	require.NoError(t, err)
	assert.Empty(t, intersection)

	union, err = FilterTasks(tasks, teams, FilterParams{UserID: "lead", Union: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, taskIDs(union))
}

func TestFilterTasks_TeamNotFound(t *testing.T) {
	tasks, teams := filterFixture()

	for _, union := range []bool{false, true} {
		result, err := FilterTasks(tasks, teams, FilterParams{TeamID: "ghost", Union: union})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrTeamNotFound))
		assert.False(t, errors.Is(err, domain.ErrTaskNotFound), "NotFound(Team) не должна совпадать с NotFound(Task)")
	}
}

func TestParseUnion(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "bool true", input: true, want: true},
		{name: "bool false", input: false, want: false},
		{name: "string true", input: "true", want: true},
		{name: "string TRUE", input: "TRUE", want: false},
		{name: "string 1", input: "1", want: false},
		{name: "empty string", input: "", want: false},
		{name: "nil", input: nil, want: false},
		{name: "number", input: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUnion(tt.input))
		})
	}
}
