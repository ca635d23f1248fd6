package models

// Team is a group of users with its own boards
type Team struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UsersCount  int    `json:"usersCount"`
	BoardsCount int    `json:"boardsCount"`
}

// TeamMember is a user as listed inside TeamDetails
type TeamMember struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
}

// TeamBoard is a board as listed inside TeamDetails
type TeamBoard struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TeamDetails embeds the full member and board lists of a team.
// Members and boards are not nested any further.
type TeamDetails struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Users       []TeamMember `json:"users"`
	Boards      []TeamBoard  `json:"boards"`
}
