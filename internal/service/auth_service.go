package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"asq/internal/auth"
	"asq/internal/capability"
	"asq/internal/errors"
	"asq/internal/model"
)

// AuthStore is every capability the registration and login workflows need.
type AuthStore interface {
	RegistrationStore
	LoginStore
}

// AuthService handles presenter registration and login.
type AuthService interface {
	// Register creates a presenter and opens a session for them. Every failure
	// is reported as errors.ErrEmailTaken.
	Register(ctx context.Context, email, password string) (model.Session, error)
	// Login opens a new session for a presenter. Every failure is reported as
	// errors.ErrInvalidCredentials.
	Login(ctx context.Context, email model.ID, password string) (model.Session, error)
}

type authService struct {
	store    AuthStore
	hasher   *auth.PasswordHasher
	validate *validator.Validate
	log      logrus.FieldLogger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store AuthStore, hasher *auth.PasswordHasher, log logrus.FieldLogger) AuthService {
	return &authService{
		store:    store,
		hasher:   hasher,
		validate: validator.New(),
		log:      log,
	}
}

// Register saves the presenter first and the session second. The two saves are
// not transactional: if only the first succeeds the presenter exists and can
// log in.
func (s *authService) Register(ctx context.Context, email, password string) (model.Session, error) {
	log := s.log.WithField("presenter", email)

	if err := s.validate.Var(email, "required,email"); err != nil {
		log.Info("registration rejected: malformed email address")
		return model.Session{}, errors.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.WithError(err).Info("registration rejected: unusable password")
		return model.Session{}, errors.ErrEmailTaken
	}

	presenter, err := s.store.SavePresenter(ctx, capability.Save[model.Presenter]{
		Record: model.NewPresenter(model.ID(email), hash),
	})
	if err != nil {
		logFailure(log, err, "registration failed: save presenter")
		return model.Session{}, errors.ErrEmailTaken
	}

	session, err := s.openSession(ctx, presenter.EmailAddress)
	if err != nil {
		logFailure(log, err, "registration incomplete: presenter saved without session")
		return model.Session{}, errors.ErrEmailTaken
	}

	log.Info("presenter registered")
	return session, nil
}

func (s *authService) Login(ctx context.Context, email model.ID, password string) (model.Session, error) {
	log := s.log.WithField("presenter", email.String())

	presenter, err := s.store.SearchPresenter(ctx, capability.Search[model.Presenter]{
		Key: model.PresenterKey(email),
	})
	if err != nil {
		s.hasher.Burn(password)
		logFailure(log, err, "login failed: search presenter")
		return model.Session{}, errors.ErrInvalidCredentials
	}

	if !s.hasher.Matches(presenter.PasswordHash, password) {
		log.Info("login failed: password mismatch")
		return model.Session{}, errors.ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, presenter.EmailAddress)
	if err != nil {
		logFailure(log, err, "login failed: save session")
		return model.Session{}, errors.ErrInvalidCredentials
	}

	log.Debug("presenter logged in")
	return session, nil
}

func (s *authService) openSession(ctx context.Context, owner model.ID) (model.Session, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return model.Session{}, err
	}
	return s.store.SaveSession(ctx, capability.Save[model.Session]{
		Record: model.NewSession(token, owner),
	})
}
