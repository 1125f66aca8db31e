package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

const presentationKey = "id = ?"

// CreatePresentationTable creates the presentations table if it does not exist.
func (s *Store) CreatePresentationTable(ctx context.Context, _ capability.CreateTable[model.Presentation]) error {
	return createTable[model.Presentation](ctx, s, "presentations")
}

// SavePresentation stores a new presentation, generating its ID when empty.
// Its creator must be a registered presenter.
func (s *Store) SavePresentation(ctx context.Context, op capability.Save[model.Presentation]) (model.Presentation, error) {
	presentation := op.Record
	err := s.do(ctx, func(db *gorm.DB) error {
		if _, err := first[model.Presenter](db, presenterKey, presentation.Creator); err != nil {
			return fmt.Errorf("creator: %w", err)
		}
		if presentation.ID.IsZero() {
			return translate(db.Create(&presentation).Error)
		}
		return insertUnique(db, &presentation, presentationKey, presentation.ID)
	})
	if err != nil {
		return model.Presentation{}, fmt.Errorf("save presentation: %w", err)
	}
	return presentation, nil
}

// SearchPresentation finds a presentation by ID.
func (s *Store) SearchPresentation(ctx context.Context, op capability.Search[model.Presentation]) (model.Presentation, error) {
	if op.Key.ID.IsZero() {
		return model.Presentation{}, fmt.Errorf("search presentation: %w", capability.ErrNotFound)
	}
	var presentation model.Presentation
	err := s.do(ctx, func(db *gorm.DB) error {
		var err error
		presentation, err = first[model.Presentation](db, presentationKey, op.Key.ID)
		return err
	})
	if err != nil {
		return model.Presentation{}, fmt.Errorf("search presentation: %w", err)
	}
	return presentation, nil
}

// FindAllPresentations lists a presenter's presentations, oldest first.
func (s *Store) FindAllPresentations(ctx context.Context, op capability.FindAll[capability.PresentationsForPresenter]) ([]model.Presentation, error) {
	presentations := []model.Presentation{}
	if op.Query.PresenterID.IsZero() {
		return presentations, nil
	}
	err := s.do(ctx, func(db *gorm.DB) error {
		return db.Where("creator = ?", op.Query.PresenterID).
			Order("creation_date ASC, id ASC").
			Find(&presentations).Error
	})
	if err != nil {
		return nil, fmt.Errorf("find presentations: %w", translate(err))
	}
	return presentations, nil
}

// DeletePresentation removes a presentation by ID.
func (s *Store) DeletePresentation(ctx context.Context, op capability.Delete[model.Presentation]) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		return remove[model.Presentation](db, presentationKey, op.Record.ID)
	})
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}
