package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

const presenterKey = "email_address = ?"

// CreatePresenterTable creates the presenters table if it does not exist.
func (s *Store) CreatePresenterTable(ctx context.Context, _ capability.CreateTable[model.Presenter]) error {
	return createTable[model.Presenter](ctx, s, "presenters")
}

// SavePresenter stores a new presenter. The email address must not be taken.
func (s *Store) SavePresenter(ctx context.Context, op capability.Save[model.Presenter]) (model.Presenter, error) {
	presenter := op.Record
	if presenter.EmailAddress.IsZero() {
		return model.Presenter{}, errors.New("save presenter: empty email address")
	}
	err := s.do(ctx, func(db *gorm.DB) error {
		return insertUnique(db, &presenter, presenterKey, presenter.EmailAddress)
	})
	if err != nil {
		return model.Presenter{}, fmt.Errorf("save presenter: %w", err)
	}
	return presenter, nil
}

// SearchPresenter finds a presenter by email address.
func (s *Store) SearchPresenter(ctx context.Context, op capability.Search[model.Presenter]) (model.Presenter, error) {
	if op.Key.EmailAddress.IsZero() {
		return model.Presenter{}, fmt.Errorf("search presenter: %w", capability.ErrNotFound)
	}
	var presenter model.Presenter
	err := s.do(ctx, func(db *gorm.DB) error {
		var err error
		presenter, err = first[model.Presenter](db, presenterKey, op.Key.EmailAddress)
		return err
	})
	if err != nil {
		return model.Presenter{}, fmt.Errorf("search presenter: %w", err)
	}
	return presenter, nil
}

// DeletePresenter removes a presenter by email address.
func (s *Store) DeletePresenter(ctx context.Context, op capability.Delete[model.Presenter]) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		return remove[model.Presenter](db, presenterKey, op.Record.EmailAddress)
	})
	if err != nil {
		return fmt.Errorf("delete presenter: %w", err)
	}
	return nil
}
