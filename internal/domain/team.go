package domain

type Team struct {
	ID      string   `json:"teamId"`
	Name    string   `json:"name,omitempty"`
	Members []string `json:"members"`
}

func (t *Team) HasMember(userID string) bool {
	for _, member := range t.Members {
		if member == userID {
			return true
		}
	}
	return false
}
