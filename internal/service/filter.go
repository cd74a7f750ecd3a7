package service

import "github.com/bagdasarian/task-tracker/internal/domain"

// FilterParams - параметры фильтрации задач; пустое поле означает "фильтр не задан"
type FilterParams struct {
	Status domain.Status
	TeamID string
	UserID string
	Union  bool
}

func (p FilterParams) IsEmpty() bool {
	return p.Status == "" && p.TeamID == "" && p.UserID == ""
}

// ParseUnion интерпретирует флаг union: true только для bool true и строки "true"
func ParseUnion(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// FilterTasks отбирает задачи по статусу, команде и пользователю.
// В режиме пересечения creator не участвует в проверке команды и пользователя,
// в режиме объединения участвует.
func FilterTasks(tasks []*domain.Task, teams []*domain.Team, params FilterParams) ([]*domain.Task, error) {
	if params.IsEmpty() {
		return tasks, nil
	}

	var members map[string]struct{}
	if params.TeamID != "" {
		team := findTeam(teams, params.TeamID)
		if team == nil {
			return nil, domain.NewNotFoundError(domain.EntityTeam, params.TeamID)
		}
		members = memberSet(team)
	}

	if params.Union {
		return unionFilter(tasks, members, params), nil
	}
	return intersectFilter(tasks, members, params), nil
}

func intersectFilter(tasks []*domain.Task, members map[string]struct{}, params FilterParams) []*domain.Task {
	result := tasks

	if params.Status != "" {
		result = keep(result, func(t *domain.Task) bool {
			return t.Status == params.Status
		})
	}

	if members != nil {
		result = keep(result, func(t *domain.Task) bool {
			return anyAssigneeIn(t, members)
		})
	}

	if params.UserID != "" {
		result = keep(result, func(t *domain.Task) bool {
			return t.HasUser(params.UserID)
		})
	}

	return result
}

func unionFilter(tasks []*domain.Task, members map[string]struct{}, params FilterParams) []*domain.Task {
	subsets := make([][]*domain.Task, 0, 3)

	if params.Status != "" {
		subsets = append(subsets, keep(tasks, func(t *domain.Task) bool {
			return t.Status == params.Status
		}))
	}

	if members != nil {
		subsets = append(subsets, keep(tasks, func(t *domain.Task) bool {
			if anyAssigneeIn(t, members) {
				return true
			}
			_, ok := members[t.Creator]
			return ok
		}))
	}

	if params.UserID != "" {
		subsets = append(subsets, keep(tasks, func(t *domain.Task) bool {
			return t.HasUser(params.UserID) || t.Creator == params.UserID
		}))
	}

	seen := make(map[string]struct{})
	result := make([]*domain.Task, 0)
	for _, subset := range subsets {
		for _, task := range subset {
			if _, ok := seen[task.ID]; ok {
				continue
			}
			seen[task.ID] = struct{}{}
			result = append(result, task)
		}
	}

	return result
}

// tasksOfTeam возвращает задачи, у которых хотя бы один исполнитель состоит в команде
func tasksOfTeam(tasks []*domain.Task, team *domain.Team) []*domain.Task {
	members := memberSet(team)
	return keep(tasks, func(t *domain.Task) bool {
		return anyAssigneeIn(t, members)
	})
}

func keep(tasks []*domain.Task, pred func(*domain.Task) bool) []*domain.Task {
	result := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if pred(task) {
			result = append(result, task)
		}
	}
	return result
}

func anyAssigneeIn(task *domain.Task, members map[string]struct{}) bool {
	for _, userID := range task.UserIDs {
		if _, ok := members[userID]; ok {
			return true
		}
	}
	return false
}

func memberSet(team *domain.Team) map[string]struct{} {
	members := make(map[string]struct{}, len(team.Members))
	for _, member := range team.Members {
		members[member] = struct{}{}
	}
	return members
}

func findTeam(teams []*domain.Team, teamID string) *domain.Team {
	for _, team := range teams {
		if team.ID == teamID {
			return team
		}
	}
	return nil
}
