package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is the presentation owner's reply to a question. A question has at
// most one answer.
type Answer struct {
	ID          ID        `json:"id" gorm:"primaryKey;size:36"`
	Author      ID        `json:"author" gorm:"size:255;not null"`
	Question    ID        `json:"question" gorm:"size:36;not null;uniqueIndex"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	WrittenDate time.Time `json:"writtenDate" gorm:"not null"`
}

// NewAnswer builds an answer written now.
func NewAnswer(author, question ID, text string) Answer {
	return Answer{
		Author:      author,
		Question:    question,
		Text:        text,
		WrittenDate: time.Now().UTC(),
	}
}

// AnswerKey builds an answer usable as a search key.
func AnswerKey(id ID) Answer {
	return Answer{ID: id}
}

// BeforeCreate sets UUID before creating the record.
func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID.IsZero() {
		a.ID = ID(uuid.NewString())
	}
	return nil
}
