package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"asq/internal/capability"
	"asq/internal/errors"
	"asq/internal/model"
)

// PresentationStore is every capability the presentation workflows need.
type PresentationStore interface {
	PresentationListStore
	PresentationCreateStore
}

// PresentationService handles presentations owned by presenters.
type PresentationService interface {
	List(ctx context.Context, presenter model.ID) ([]model.Presentation, error)
	Create(ctx context.Context, sessionToken model.ID, title string, openToQuestions bool) (model.Presentation, error)
}

type presentationService struct {
	store PresentationStore
	log   logrus.FieldLogger
}

// NewPresentationService creates a new presentation service.
func NewPresentationService(store PresentationStore, log logrus.FieldLogger) PresentationService {
	return &presentationService{store: store, log: log}
}

// List returns the presentations a registered presenter created, oldest first.
func (s *presentationService) List(ctx context.Context, presenter model.ID) ([]model.Presentation, error) {
	log := s.log.WithField("presenter", presenter.String())

	if _, err := s.store.SearchPresenter(ctx, capability.Search[model.Presenter]{
		Key: model.PresenterKey(presenter),
	}); err != nil {
		logFailure(log, err, "list presentations: search presenter")
		return nil, errors.ErrUnknownPresenter
	}

	presentations, err := s.store.FindAllPresentations(ctx, capability.FindAll[capability.PresentationsForPresenter]{
		Query: capability.PresentationsForPresenter{PresenterID: presenter},
	})
	if err != nil {
		logFailure(log, err, "list presentations: find all")
		return nil, errors.ErrUnknownPresenter
	}
	return presentations, nil
}

// Create saves a presentation owned by the session's presenter.
func (s *presentationService) Create(ctx context.Context, sessionToken model.ID, title string, openToQuestions bool) (model.Presentation, error) {
	session, err := s.store.SearchSession(ctx, capability.Search[model.Session]{
		Key: model.SessionKey(sessionToken),
	})
	if err != nil {
		logFailure(s.log, err, "create presentation: search session")
		return model.Presentation{}, errors.ErrInvalidSession
	}

	log := s.log.WithField("presenter", session.Owner.String())
	presentation, err := s.store.SavePresentation(ctx, capability.Save[model.Presentation]{
		Record: model.NewPresentation(session.Owner, title, openToQuestions),
	})
	if err != nil {
		logFailure(log, err, "create presentation: save")
		return model.Presentation{}, errors.ErrSavePresentation
	}

	log.WithField("presentation", presentation.ID.String()).Info("presentation created")
	return presentation, nil
}
