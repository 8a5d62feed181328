package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateRequest payload for login.
type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest payload for completing a reset.
type PasswordResetRequest struct {
	NewPassword string `json:"new_password"`
}

// AuthResponse carries an issued access token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse carries a human-readable status message.
type MessageResponse struct {
	Message string `json:"message"`
}
