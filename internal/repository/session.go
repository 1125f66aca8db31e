package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

const sessionKey = "token = ?"

// CreateSessionTable creates the sessions table if it does not exist.
func (s *Store) CreateSessionTable(ctx context.Context, _ capability.CreateTable[model.Session]) error {
	return createTable[model.Session](ctx, s, "sessions")
}

// SaveSession stores a new session. Its owner must be a registered presenter.
func (s *Store) SaveSession(ctx context.Context, op capability.Save[model.Session]) (model.Session, error) {
	session := op.Record
	if session.Token.IsZero() {
		return model.Session{}, errors.New("save session: empty token")
	}
	err := s.do(ctx, func(db *gorm.DB) error {
		if _, err := first[model.Presenter](db, presenterKey, session.Owner); err != nil {
			return fmt.Errorf("owner: %w", err)
		}
		return insertUnique(db, &session, sessionKey, session.Token)
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// SearchSession finds a session by token.
func (s *Store) SearchSession(ctx context.Context, op capability.Search[model.Session]) (model.Session, error) {
	if op.Key.Token.IsZero() {
		return model.Session{}, fmt.Errorf("search session: %w", capability.ErrNotFound)
	}
	var session model.Session
	err := s.do(ctx, func(db *gorm.DB) error {
		var err error
		session, err = first[model.Session](db, sessionKey, op.Key.Token)
		return err
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("search session: %w", err)
	}
	return session, nil
}

// DeleteSession removes a session by token.
func (s *Store) DeleteSession(ctx context.Context, op capability.Delete[model.Session]) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		return remove[model.Session](db, sessionKey, op.Record.Token)
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
