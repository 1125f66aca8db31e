package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"asq/internal/capability"
	"asq/internal/model"
)

// MockStore is a mock implementation of every capability the services use.
// A nil record in Return echoes the record that was passed in.
type MockStore struct {
	mock.Mock
}

func echo[T any](args mock.Arguments, rec T) (T, error) {
	if v, ok := args.Get(0).(T); ok {
		return v, args.Error(1)
	}
	return rec, args.Error(1)
}

func (m *MockStore) SavePresenter(ctx context.Context, op capability.Save[model.Presenter]) (model.Presenter, error) {
	return echo(m.Called(ctx, op), op.Record)
}

func (m *MockStore) SearchPresenter(ctx context.Context, op capability.Search[model.Presenter]) (model.Presenter, error) {
	return echo(m.Called(ctx, op), model.Presenter{})
}

func (m *MockStore) SaveSession(ctx context.Context, op capability.Save[model.Session]) (model.Session, error) {
	return echo(m.Called(ctx, op), op.Record)
}

func (m *MockStore) SearchSession(ctx context.Context, op capability.Search[model.Session]) (model.Session, error) {
	return echo(m.Called(ctx, op), model.Session{})
}

func (m *MockStore) SavePresentation(ctx context.Context, op capability.Save[model.Presentation]) (model.Presentation, error) {
	return echo(m.Called(ctx, op), op.Record)
}

func (m *MockStore) SearchPresentation(ctx context.Context, op capability.Search[model.Presentation]) (model.Presentation, error) {
	return echo(m.Called(ctx, op), model.Presentation{})
}

func (m *MockStore) FindAllPresentations(ctx context.Context, op capability.FindAll[capability.PresentationsForPresenter]) ([]model.Presentation, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Presentation), args.Error(1)
}

func (m *MockStore) SaveQuestion(ctx context.Context, op capability.Save[model.Question]) (model.Question, error) {
	return echo(m.Called(ctx, op), op.Record)
}

func (m *MockStore) SearchQuestion(ctx context.Context, op capability.Search[model.Question]) (model.Question, error) {
	return echo(m.Called(ctx, op), model.Question{})
}

func (m *MockStore) UpdateQuestion(ctx context.Context, op capability.Update[model.Question]) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockStore) FindAllQuestions(ctx context.Context, op capability.FindAll[capability.QuestionsForPresentation]) ([]model.Question, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockStore) SaveAnswer(ctx context.Context, op capability.Save[model.Answer]) (model.Answer, error) {
	return echo(m.Called(ctx, op), op.Record)
}

var (
	_ AuthStore         = (*MockStore)(nil)
	_ PresentationStore = (*MockStore)(nil)
	_ QuestionStore     = (*MockStore)(nil)
)
