package model

// UserCredentials is used for login requests
type UserCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code"`
}

// LoginResponse contains the session token for the editor UI
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SessionResponse echoes the authenticated identity back to the page layer
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
