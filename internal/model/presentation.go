package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Presentation is a talk created by a presenter that audiences ask questions about.
type Presentation struct {
	ID                ID        `json:"id" gorm:"primaryKey;size:36"`
	Creator           ID        `json:"creator" gorm:"size:255;not null;index"`
	Title             string    `json:"title" gorm:"size:255;not null"`
	IsOpenToQuestions bool      `json:"isOpenToQuestions" gorm:"not null"`
	CreationDate      time.Time `json:"creationDate" gorm:"not null;index"`
}

// NewPresentation builds a presentation owned by creator.
func NewPresentation(creator ID, title string, openToQuestions bool) Presentation {
	return Presentation{
		Creator:           creator,
		Title:             title,
		IsOpenToQuestions: openToQuestions,
		CreationDate:      time.Now().UTC(),
	}
}

// PresentationKey builds a presentation usable as a search key.
func PresentationKey(id ID) Presentation {
	return Presentation{ID: id}
}

// BeforeCreate sets UUID before creating the record.
func (p *Presentation) BeforeCreate(tx *gorm.DB) error {
	if p.ID.IsZero() {
		p.ID = ID(uuid.NewString())
	}
	return nil
}
