package capability

import (
	"context"
	"fmt"

	"asq/internal/model"
)

// CreateAllTables initializes storage for every model. It must run before any
// handler is reachable and is safe to run on every start.
func CreateAllTables(ctx context.Context, db TableCreators) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"presenters", func() error { return db.CreatePresenterTable(ctx, CreateTable[model.Presenter]{}) }},
		{"sessions", func() error { return db.CreateSessionTable(ctx, CreateTable[model.Session]{}) }},
		{"presentations", func() error { return db.CreatePresentationTable(ctx, CreateTable[model.Presentation]{}) }},
		{"questions", func() error { return db.CreateQuestionTable(ctx, CreateTable[model.Question]{}) }},
		{"answers", func() error { return db.CreateAnswerTable(ctx, CreateTable[model.Answer]{}) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("create %s table: %w", step.name, err)
		}
	}
	return nil
}
