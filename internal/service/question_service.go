package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"asq/internal/capability"
	"asq/internal/errors"
	"asq/internal/model"
)

const (
	nodRetryInterval = 2 * time.Millisecond
	nodRetryJitter   = 50
	maxNodRetries    = 100
)

// QuestionStore is every capability the question workflows need.
type QuestionStore interface {
	AskStore
	NodStore
	QuestionListStore
	AnswerStore
}

// QuestionService handles the audience's questions and the presenter's answers.
type QuestionService interface {
	Ask(ctx context.Context, presentation model.ID, text string) (model.Question, error)
	Nod(ctx context.Context, question model.ID) (model.Question, error)
	List(ctx context.Context, presentation model.ID) ([]model.Question, error)
	Answer(ctx context.Context, sessionToken, question model.ID, text string) (model.Answer, error)
}

type questionService struct {
	store QuestionStore
	log   logrus.FieldLogger
}

// NewQuestionService creates a new question service.
func NewQuestionService(store QuestionStore, log logrus.FieldLogger) QuestionService {
	return &questionService{store: store, log: log}
}

// Ask stores an unanswered question without nods. The presentation is not
// checked for existence.
func (s *questionService) Ask(ctx context.Context, presentation model.ID, text string) (model.Question, error) {
	log := s.log.WithField("presentation", presentation.String())

	question, err := s.store.SaveQuestion(ctx, capability.Save[model.Question]{
		Record: model.NewQuestion(presentation, text),
	})
	if err != nil {
		logFailure(log, err, "ask: save question")
		return model.Question{}, errors.ErrSaveQuestion
	}

	log.WithField("question", question.ID.String()).Debug("question asked")
	return question, nil
}

// Nod increments a question's nod count. Concurrent nods on the same question
// race on the stored version; the loser rereads and tries again, so no nod is
// lost.
func (s *questionService) Nod(ctx context.Context, id model.ID) (model.Question, error) {
	log := s.log.WithField("question", id.String())

	var nodded model.Question
	backoff := retry.WithMaxRetries(maxNodRetries,
		retry.WithJitterPercent(nodRetryJitter, retry.NewConstant(nodRetryInterval)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		question, err := s.store.SearchQuestion(ctx, capability.Search[model.Question]{
			Key: model.QuestionKey(id),
		})
		if err != nil {
			return err
		}

		question.Nod()
		if err := s.store.UpdateQuestion(ctx, capability.Update[model.Question]{Record: question}); err != nil {
			if stderrors.Is(err, capability.ErrConflict) {
				return retry.RetryableError(err)
			}
			return err
		}

		nodded = question
		return nil
	})
	switch {
	case err == nil:
	case stderrors.Is(err, capability.ErrNotFound):
		logFailure(log, err, "nod failed")
		return model.Question{}, errors.ErrInvalidQuestion
	default:
		log.WithError(err).Error("nod failed")
		return model.Question{}, errors.ErrInternal
	}

	return nodded, nil
}

// List returns the questions asked about a presentation, oldest first.
func (s *questionService) List(ctx context.Context, presentation model.ID) ([]model.Question, error) {
	questions, err := s.store.FindAllQuestions(ctx, capability.FindAll[capability.QuestionsForPresentation]{
		Query: capability.QuestionsForPresentation{PresentationID: presentation},
	})
	if err != nil {
		logFailure(s.log.WithField("presentation", presentation.String()), err, "list questions")
		return nil, errors.ErrInvalidPresentation
	}
	return questions, nil
}

// Answer lets the owner of a question's presentation answer it, once.
func (s *questionService) Answer(ctx context.Context, sessionToken, questionID model.ID, text string) (model.Answer, error) {
	log := s.log.WithField("question", questionID.String())

	question, err := s.store.SearchQuestion(ctx, capability.Search[model.Question]{
		Key: model.QuestionKey(questionID),
	})
	if err != nil {
		logFailure(log, err, "answer: search question")
		return model.Answer{}, errors.ErrInvalidQuestion
	}

	presentation, err := s.store.SearchPresentation(ctx, capability.Search[model.Presentation]{
		Key: model.PresentationKey(question.Presentation),
	})
	if err != nil {
		logFailure(log, err, "answer: search presentation")
		return model.Answer{}, errors.ErrInvalidPresentation
	}

	session, err := s.store.SearchSession(ctx, capability.Search[model.Session]{
		Key: model.SessionKey(sessionToken),
	})
	if err != nil {
		logFailure(log, err, "answer: search session")
		return model.Answer{}, errors.ErrInvalidSession
	}

	if !presentation.Creator.Equal(session.Owner) {
		log.WithField("presenter", session.Owner.String()).Warn("answer rejected: presenter does not own presentation")
		return model.Answer{}, errors.ErrNotAllowed
	}

	answer, err := s.store.SaveAnswer(ctx, capability.Save[model.Answer]{
		Record: model.NewAnswer(session.Owner, question.ID, text),
	})
	switch {
	case err == nil:
	case stderrors.Is(err, capability.ErrConflict):
		log.Info("answer rejected: question already answered")
		return model.Answer{}, errors.ErrAlreadyAnswered
	case stderrors.Is(err, capability.ErrNotFound):
		log.Info("answer rejected: question removed")
		return model.Answer{}, errors.ErrInvalidQuestion
	default:
		log.WithError(err).Error("answer: save answer")
		return model.Answer{}, errors.ErrSaveAnswer
	}

	log.Info("question answered")
	return answer, nil
}
