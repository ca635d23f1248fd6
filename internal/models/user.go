package models

// User is a member of a team who can be assigned tasks.
// TasksCount is a cached aggregate from the API.
type User struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TasksCount  int    `json:"tasksCount"`
}

// Assignee projects the user down to the summary embedded in tasks
func (u User) Assignee() AssigneeUser {
	return AssigneeUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// GetID returns the user id
func (u User) GetID() int {
	return u.ID
}
