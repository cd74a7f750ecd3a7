package domain

type User struct {
	ID       string   `json:"userId"`
	Username string   `json:"username,omitempty"`
	TaskID   *string  `json:"taskId"`
	Tasks    []string `json:"tasks"`
}

// DetachTask убирает ссылки пользователя на задачу, возвращает true если запись изменилась
func (u *User) DetachTask(taskID string) bool {
	changed := false
	if u.TaskID != nil && *u.TaskID == taskID {
		u.TaskID = nil
		changed = true
	}

	kept := u.Tasks[:0]
	for _, id := range u.Tasks {
		if id == taskID {
			changed = true
			continue
		}
		kept = append(kept, id)
	}
	u.Tasks = kept

	return changed
}

// DetachAllTasks очищает taskId и tasks, возвращает true если запись изменилась
func (u *User) DetachAllTasks() bool {
	changed := u.TaskID != nil || len(u.Tasks) > 0
	u.TaskID = nil
	u.Tasks = []string{}
	return changed
}
