package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"asq/internal/capability"
)

// Capability bundles, one per workflow. Each workflow depends only on the
// operations it performs.

// RegistrationStore can register a presenter and open their first session.
type RegistrationStore interface {
	capability.PresenterSaver
	capability.SessionSaver
}

// LoginStore can check credentials and open a session.
type LoginStore interface {
	capability.PresenterSearcher
	capability.SessionSaver
}

// PresentationListStore can list a known presenter's presentations.
type PresentationListStore interface {
	capability.PresenterSearcher
	capability.PresentationFinder
}

// PresentationCreateStore can create a presentation for a session owner.
type PresentationCreateStore interface {
	capability.SessionSearcher
	capability.PresentationSaver
}

// AskStore can store new questions.
type AskStore interface {
	capability.QuestionSaver
}

// NodStore can read and rewrite a question.
type NodStore interface {
	capability.QuestionSearcher
	capability.QuestionUpdater
}

// QuestionListStore can list the questions of a presentation.
type QuestionListStore interface {
	capability.QuestionFinder
}

// AnswerStore can authorize and store an answer.
type AnswerStore interface {
	capability.QuestionSearcher
	capability.PresentationSearcher
	capability.SessionSearcher
	capability.AnswerSaver
}

// logFailure records why a workflow failed. Missing or conflicting records are
// expected client mistakes; anything else is a storage fault.
func logFailure(log logrus.FieldLogger, err error, msg string) {
	entry := log.WithError(err)
	if errors.Is(err, capability.ErrNotFound) || errors.Is(err, capability.ErrConflict) {
		entry.Info(msg)
		return
	}
	entry.Error(msg)
}
