package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

const answerKey = "id = ?"

// CreateAnswerTable creates the answers table if it does not exist.
func (s *Store) CreateAnswerTable(ctx context.Context, _ capability.CreateTable[model.Answer]) error {
	return createTable[model.Answer](ctx, s, "answers")
}

// SaveAnswer stores the answer to a question and marks the question answered
// in the same transaction. A question that already has an answer fails with
// capability.ErrConflict.
func (s *Store) SaveAnswer(ctx context.Context, op capability.Save[model.Answer]) (model.Answer, error) {
	answer := op.Record
	err := s.do(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			question, err := first[model.Question](tx, questionKey, answer.Question)
			if err != nil {
				return fmt.Errorf("question: %w", err)
			}
			if err := insertUnique(tx, &answer, "question = ?", answer.Question); err != nil {
				return err
			}
			return tx.Model(&model.Question{}).
				Where(questionKey, question.ID).
				Updates(map[string]interface{}{
					"answered": true,
					"version":  gorm.Expr("version + 1"),
				}).Error
		})
	})
	if err != nil {
		return model.Answer{}, fmt.Errorf("save answer: %w", err)
	}
	return answer, nil
}

// SearchAnswer finds an answer by ID.
func (s *Store) SearchAnswer(ctx context.Context, op capability.Search[model.Answer]) (model.Answer, error) {
	if op.Key.ID.IsZero() {
		return model.Answer{}, fmt.Errorf("search answer: %w", capability.ErrNotFound)
	}
	var answer model.Answer
	err := s.do(ctx, func(db *gorm.DB) error {
		var err error
		answer, err = first[model.Answer](db, answerKey, op.Key.ID)
		return err
	})
	if err != nil {
		return model.Answer{}, fmt.Errorf("search answer: %w", err)
	}
	return answer, nil
}

// DeleteAnswer removes an answer and marks its question unanswered again.
func (s *Store) DeleteAnswer(ctx context.Context, op capability.Delete[model.Answer]) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			answer, err := first[model.Answer](tx, answerKey, op.Record.ID)
			if err != nil {
				return err
			}
			if err := remove[model.Answer](tx, answerKey, answer.ID); err != nil {
				return err
			}
			return tx.Model(&model.Question{}).
				Where(questionKey, answer.Question).
				Updates(map[string]interface{}{
					"answered": false,
					"version":  gorm.Expr("version + 1"),
				}).Error
		})
	})
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	return nil
}
