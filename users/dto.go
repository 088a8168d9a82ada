package users

// ProfileResponse represents the data returned for the authenticated user.
type ProfileResponse struct {
	// The ID of the user
	// example: 1
	ID int `json:"id"`
	// The username of the user
	// example: "alice"
	Username string `json:"username"`
}
