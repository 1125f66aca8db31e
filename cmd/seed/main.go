package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"asq/internal/auth"
	"asq/internal/capability"
	"asq/internal/config"
	"asq/internal/db"
	"asq/internal/logger"
	"asq/internal/repository"
	"asq/internal/service"
)

//go:embed demo.json
var demoData []byte

// SeedPresenter is one presenter and the presentations they own.
type SeedPresenter struct {
	EmailAddress  string             `json:"emailAddress"`
	Password      string             `json:"password"`
	Presentations []SeedPresentation `json:"presentations"`
}

// SeedPresentation is a presentation with the questions already asked about it.
type SeedPresentation struct {
	Title             string   `json:"title"`
	IsOpenToQuestions bool     `json:"isOpenToQuestions"`
	Questions         []string `json:"questions"`
}

func main() {
	file := flag.String("file", "", "JSON seed file (defaults to the built-in demo data)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}
	log.Info("Starting seed script...")

	presenters, err := loadSeed(*file)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := repository.NewStore(gormDB)
	ctx := context.Background()
	if err := capability.CreateAllTables(ctx, store); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("password hasher: %v", err)
	}

	s := &seeder{
		auth:          service.NewAuthService(store, hasher, log),
		presentations: service.NewPresentationService(store, log),
		questions:     service.NewQuestionService(store, log),
		validate:      validator.New(),
		log:           log,
	}

	result, err := s.seed(ctx, presenters)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.WithFields(logrus.Fields{
		"presenters_created":    result.created,
		"presenters_existing":   result.existing,
		"presentations_created": result.presentations,
		"questions_asked":       result.questions,
	}).Info("Seed completed successfully")
}

// loadSeed reads seed data from path, or the built-in demo data if path is empty.
func loadSeed(path string) ([]SeedPresenter, error) {
	data := demoData
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var presenters []SeedPresenter
	if err := json.Unmarshal(data, &presenters); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return presenters, nil
}
