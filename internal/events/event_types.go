package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventAccountConfirmed       EventType = "account_confirmed"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventPasswordChanged        EventType = "password_changed"
)

// Event represents an account lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Email     string      `json:"email"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload carries the confirmation token for the welcome mail.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// PasswordResetRequestedPayload carries the reset token for the reset mail.
type PasswordResetRequestedPayload struct {
	Token string `json:"token"`
}

// AccountConfirmedPayload payload.
type AccountConfirmedPayload struct{}

// PasswordChangedPayload payload.
type PasswordChangedPayload struct{}
