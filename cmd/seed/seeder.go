package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"asq/internal/errors"
	"asq/internal/model"
	"asq/internal/service"
)

type seeder struct {
	auth          service.AuthService
	presentations service.PresentationService
	questions     service.QuestionService
	validate      *validator.Validate
	log           logrus.FieldLogger
}

type seedResult struct {
	created       int
	existing      int
	presentations int
	questions     int
}

// seed registers each presenter, or logs in if they already exist, then
// creates their presentations and asks the listed questions. Presentations of
// an existing presenter are created again.
func (s *seeder) seed(ctx context.Context, presenters []SeedPresenter) (seedResult, error) {
	var result seedResult

	for _, p := range presenters {
		log := s.log.WithField("presenter", p.EmailAddress)

		// Register reports malformed addresses as taken.
		if err := s.validate.Var(p.EmailAddress, "required,email"); err != nil {
			return result, fmt.Errorf("invalid email address %q: %w", p.EmailAddress, err)
		}

		session, err := s.auth.Register(ctx, p.EmailAddress, p.Password)
		switch {
		case err == nil:
			result.created++
		case err == errors.ErrEmailTaken:
			session, err = s.auth.Login(ctx, model.ID(p.EmailAddress), p.Password)
			if err != nil {
				return result, fmt.Errorf("presenter %s exists with another password: %w", p.EmailAddress, err)
			}
			result.existing++
		default:
			return result, fmt.Errorf("register %s: %w", p.EmailAddress, err)
		}

		for _, sp := range p.Presentations {
			presentation, err := s.presentations.Create(ctx, session.Token, sp.Title, sp.IsOpenToQuestions)
			if err != nil {
				return result, fmt.Errorf("create presentation %q: %w", sp.Title, err)
			}
			result.presentations++

			for _, text := range sp.Questions {
				if _, err := s.questions.Ask(ctx, presentation.ID, text); err != nil {
					return result, fmt.Errorf("ask %q: %w", text, err)
				}
				result.questions++
			}
			log.WithField("presentation", presentation.ID.String()).Debug("presentation seeded")
		}
	}

	return result, nil
}
