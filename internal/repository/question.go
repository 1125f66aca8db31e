package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"asq/internal/capability"
	"asq/internal/model"
)

const questionKey = "id = ?"

// CreateQuestionTable creates the questions table if it does not exist.
func (s *Store) CreateQuestionTable(ctx context.Context, _ capability.CreateTable[model.Question]) error {
	return createTable[model.Question](ctx, s, "questions")
}

// SaveQuestion stores a new question, generating its ID when empty.
func (s *Store) SaveQuestion(ctx context.Context, op capability.Save[model.Question]) (model.Question, error) {
	question := op.Record
	question.Version = 0
	err := s.do(ctx, func(db *gorm.DB) error {
		if question.ID.IsZero() {
			return translate(db.Create(&question).Error)
		}
		return insertUnique(db, &question, questionKey, question.ID)
	})
	if err != nil {
		return model.Question{}, fmt.Errorf("save question: %w", err)
	}
	return question, nil
}

// SearchQuestion finds a question by ID.
func (s *Store) SearchQuestion(ctx context.Context, op capability.Search[model.Question]) (model.Question, error) {
	if op.Key.ID.IsZero() {
		return model.Question{}, fmt.Errorf("search question: %w", capability.ErrNotFound)
	}
	var question model.Question
	err := s.do(ctx, func(db *gorm.DB) error {
		var err error
		question, err = first[model.Question](db, questionKey, op.Key.ID)
		return err
	})
	if err != nil {
		return model.Question{}, fmt.Errorf("search question: %w", err)
	}
	return question, nil
}

// UpdateQuestion writes the question back if nobody updated it since it was
// read. A stale version fails with capability.ErrConflict.
func (s *Store) UpdateQuestion(ctx context.Context, op capability.Update[model.Question]) error {
	question := op.Record
	err := s.do(ctx, func(db *gorm.DB) error {
		res := db.Model(&model.Question{}).
			Where("id = ? AND version = ?", question.ID, question.Version).
			Updates(map[string]interface{}{
				"presentation": question.Presentation,
				"text":         question.Text,
				"nods":         question.Nods,
				"answered":     question.Answered,
				"version":      question.Version + 1,
			})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 1 {
			return nil
		}

		if _, err := first[model.Question](db, questionKey, question.ID); err != nil {
			return err
		}
		return capability.ErrConflict
	})
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return nil
}

// FindAllQuestions lists the questions of a presentation, oldest first.
func (s *Store) FindAllQuestions(ctx context.Context, op capability.FindAll[capability.QuestionsForPresentation]) ([]model.Question, error) {
	questions := []model.Question{}
	if op.Query.PresentationID.IsZero() {
		return questions, nil
	}
	err := s.do(ctx, func(db *gorm.DB) error {
		return db.Where("presentation = ?", op.Query.PresentationID).
			Order("ask_date ASC, id ASC").
			Find(&questions).Error
	})
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", translate(err))
	}
	return questions, nil
}

// DeleteQuestion removes a question and its answer, if any.
func (s *Store) DeleteQuestion(ctx context.Context, op capability.Delete[model.Question]) error {
	err := s.do(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("question = ?", op.Record.ID).Delete(&model.Answer{}).Error; err != nil {
				return err
			}
			return remove[model.Question](tx, questionKey, op.Record.ID)
		})
	})
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}
