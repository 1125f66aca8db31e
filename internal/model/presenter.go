package model

import "time"

// Presenter is a registered user who owns presentations.
type Presenter struct {
	EmailAddress ID        `json:"emailAddress" gorm:"primaryKey;size:255"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	JoinDate     time.Time `json:"joinDate" gorm:"not null"`
}

// NewPresenter builds a presenter from an already hashed password.
func NewPresenter(email ID, passwordHash string) Presenter {
	return Presenter{
		EmailAddress: email,
		PasswordHash: passwordHash,
		JoinDate:     time.Now().UTC(),
	}
}

// PresenterKey builds a presenter usable as a search key.
func PresenterKey(email ID) Presenter {
	return Presenter{EmailAddress: email}
}
