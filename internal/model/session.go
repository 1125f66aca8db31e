package model

import "time"

// Session is a bearer token issued to a presenter at login or registration.
// Sessions are never expired or revoked.
type Session struct {
	Token     ID        `json:"token" gorm:"primaryKey;size:64"`
	Owner     ID        `json:"owner" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

// NewSession builds a session for owner with the given token.
func NewSession(token, owner ID) Session {
	return Session{
		Token:     token,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
}

// SessionKey builds a session usable as a search key.
func SessionKey(token ID) Session {
	return Session{Token: token}
}
