package domain

import "time"

type Task struct {
	ID            string     `json:"taskId"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        Status     `json:"status"`
	UserIDs       []string   `json:"userIds"`
	Creator       string     `json:"creator"`
	GitlabIssueID string     `json:"gitlabIssueId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// HasUser сообщает, назначен ли пользователь на задачу (creator не учитывается)
func (t *Task) HasUser(userID string) bool {
	for _, id := range t.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// TaskPatch описывает частичное обновление задачи: nil (или Set=false) означает "поле не передано".
// Для Description, Deadline и GitlabIssueID явный null очищает поле.
type TaskPatch struct {
	Title         *string
	Description   Optional[string]
	Deadline      Optional[time.Time]
	Status        *Status
	UserIDs       []string
	GitlabIssueID Optional[string]
}

// Apply накладывает переданные поля поверх задачи
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description.Set {
		t.Description = valueOrZero(p.Description.Value)
	}
	if p.Deadline.Set {
		t.Deadline = nil
		if p.Deadline.Value != nil {
			deadline := *p.Deadline.Value
			t.Deadline = &deadline
		}
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.UserIDs != nil {
		t.UserIDs = append([]string{}, p.UserIDs...)
	}
	if p.GitlabIssueID.Set {
		t.GitlabIssueID = valueOrZero(p.GitlabIssueID.Value)
	}
}

func valueOrZero[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// StatusUnknown - ключ группировки для задач без статуса
const StatusUnknown Status = "Unknown"

type CalendarEntry struct {
	TaskID   string     `json:"taskId"`
	Title    string     `json:"title"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Status   Status     `json:"status"`
}

type TaskSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

type TaskProgress struct {
	TaskID          string `json:"taskId"`
	Title           string `json:"title"`
	Status          Status `json:"status"`
	ProgressPercent int    `json:"progress_percent"`
}
