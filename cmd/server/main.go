package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"asq/internal/auth"
	"asq/internal/capability"
	"asq/internal/config"
	"asq/internal/db"
	"asq/internal/handler"
	"asq/internal/logger"
	"asq/internal/repository"
	"asq/internal/router"
	"asq/internal/service"
)

// @title asq API
// @version 1.0
// @description Presenters register and create presentations; the audience asks and nods questions that only the presentation's creator may answer.
// @BasePath /
// @schemes http
func main() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	store := repository.NewStore(gormDB)
	ctx := context.Background()

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := store.DropTables(ctx); err != nil {
			log.WithError(err).Warn("failed to drop tables")
		}
	}

	// Tables must exist before any handler is reachable.
	if err := capability.CreateAllTables(ctx, store); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("password hasher: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(store, hasher, log.WithField("component", "auth"))
	presentationService := service.NewPresentationService(store, log.WithField("component", "presentations"))
	questionService := service.NewQuestionService(store, log.WithField("component", "questions"))

	// Initialize handlers
	presenterHandler := handler.NewPresenterHandler(authService)
	presentationHandler := handler.NewPresentationHandler(presentationService)
	questionHandler := handler.NewQuestionHandler(questionService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(e, cfg, log.WithField("component", "http"),
		presenterHandler, presentationHandler, questionHandler)

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	log.WithFields(logrus.Fields{"addr": addr, "driver": cfg.DBDriver}).Info("server starting")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("server start: %v", err)
		os.Exit(1)
	}
}

// swaggerURL returns where the Swagger UI is served. SWAGGER_HOST may already
// include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
