package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is asked by the audience of a presentation.
type Question struct {
	ID           ID        `json:"id" gorm:"primaryKey;size:36"`
	Presentation ID        `json:"presentation" gorm:"size:36;not null;index"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	Nods         uint32    `json:"nods" gorm:"not null;default:0"`
	Answered     bool      `json:"answered" gorm:"not null;default:false"`
	AskDate      time.Time `json:"timeAsked" gorm:"not null;index"`

	// Version is bumped by every update and guards against lost writes.
	Version uint64 `json:"-" gorm:"not null;default:0"`
}

// NewQuestion builds an unanswered question without nods.
func NewQuestion(presentation ID, text string) Question {
	return Question{
		Presentation: presentation,
		Text:         text,
		AskDate:      time.Now().UTC(),
	}
}

// QuestionKey builds a question usable as a search key.
func QuestionKey(id ID) Question {
	return Question{ID: id}
}

// Nod records one more audience member's interest.
func (q *Question) Nod() {
	q.Nods++
}

// BeforeCreate sets UUID before creating the record.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID.IsZero() {
		q.ID = ID(uuid.NewString())
	}
	return nil
}
