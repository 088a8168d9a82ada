package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"strongpassword123"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully."`
	UserID  int    `json:"userID" example:"1"`
}

// MessageResponse is a generic success payload carrying only a message.
type MessageResponse struct {
	Message string `json:"message" example:"Login successful!"`
}
