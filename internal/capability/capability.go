package capability

import (
	"context"

	"asq/internal/model"
)

// Presenters

type PresenterSaver interface {
	SavePresenter(ctx context.Context, op Save[model.Presenter]) (model.Presenter, error)
}

type PresenterSearcher interface {
	SearchPresenter(ctx context.Context, op Search[model.Presenter]) (model.Presenter, error)
}

type PresenterDeleter interface {
	DeletePresenter(ctx context.Context, op Delete[model.Presenter]) error
}

type PresenterTableCreator interface {
	CreatePresenterTable(ctx context.Context, op CreateTable[model.Presenter]) error
}

// Sessions

type SessionSaver interface {
	SaveSession(ctx context.Context, op Save[model.Session]) (model.Session, error)
}

type SessionSearcher interface {
	SearchSession(ctx context.Context, op Search[model.Session]) (model.Session, error)
}

type SessionDeleter interface {
	DeleteSession(ctx context.Context, op Delete[model.Session]) error
}

type SessionTableCreator interface {
	CreateSessionTable(ctx context.Context, op CreateTable[model.Session]) error
}

// Presentations

type PresentationSaver interface {
	SavePresentation(ctx context.Context, op Save[model.Presentation]) (model.Presentation, error)
}

type PresentationSearcher interface {
	SearchPresentation(ctx context.Context, op Search[model.Presentation]) (model.Presentation, error)
}

type PresentationDeleter interface {
	DeletePresentation(ctx context.Context, op Delete[model.Presentation]) error
}

type PresentationFinder interface {
	FindAllPresentations(ctx context.Context, op FindAll[PresentationsForPresenter]) ([]model.Presentation, error)
}

type PresentationTableCreator interface {
	CreatePresentationTable(ctx context.Context, op CreateTable[model.Presentation]) error
}

// Questions

type QuestionSaver interface {
	SaveQuestion(ctx context.Context, op Save[model.Question]) (model.Question, error)
}

type QuestionSearcher interface {
	SearchQuestion(ctx context.Context, op Search[model.Question]) (model.Question, error)
}

type QuestionUpdater interface {
	UpdateQuestion(ctx context.Context, op Update[model.Question]) error
}

type QuestionDeleter interface {
	DeleteQuestion(ctx context.Context, op Delete[model.Question]) error
}

type QuestionFinder interface {
	FindAllQuestions(ctx context.Context, op FindAll[QuestionsForPresentation]) ([]model.Question, error)
}

type QuestionTableCreator interface {
	CreateQuestionTable(ctx context.Context, op CreateTable[model.Question]) error
}

// Answers

type AnswerSaver interface {
	SaveAnswer(ctx context.Context, op Save[model.Answer]) (model.Answer, error)
}

type AnswerSearcher interface {
	SearchAnswer(ctx context.Context, op Search[model.Answer]) (model.Answer, error)
}

type AnswerDeleter interface {
	DeleteAnswer(ctx context.Context, op Delete[model.Answer]) error
}

type AnswerTableCreator interface {
	CreateAnswerTable(ctx context.Context, op CreateTable[model.Answer]) error
}

// TableCreators can initialize storage for every model.
type TableCreators interface {
	PresenterTableCreator
	SessionTableCreator
	PresentationTableCreator
	QuestionTableCreator
	AnswerTableCreator
}

// Authority is the full capability set a storage backend offers.
type Authority interface {
	TableCreators

	PresenterSaver
	PresenterSearcher
	PresenterDeleter

	SessionSaver
	SessionSearcher
	SessionDeleter

	PresentationSaver
	PresentationSearcher
	PresentationDeleter
	PresentationFinder

	QuestionSaver
	QuestionSearcher
	QuestionUpdater
	QuestionDeleter
	QuestionFinder

	AnswerSaver
	AnswerSearcher
	AnswerDeleter
}
