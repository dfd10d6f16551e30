package main

import (
	"context"

	api "contactbook-backend/cmd/api"
	authdomain "contactbook-backend/internal/auth/domain"
	authRepo "contactbook-backend/internal/auth/repository"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactRepo "contactbook-backend/internal/contact/repository"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/config"
	"contactbook-backend/pkg/database"
	"contactbook-backend/pkg/firebase"
	"contactbook-backend/pkg/logger"
	"contactbook-backend/pkg/token"
	"contactbook-backend/pkg/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Initialize credential store
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize contact store
	ctx := context.Background()
	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Firestore")
	}
	defer firestoreClient.Close()

	// Token service; an unusable secret is a fatal configuration error
	tokenService, err := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Request validator
	validate, err := validation.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize validator")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	contactRepository := contactRepo.NewContactRepository(firestoreClient)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenService, &log)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository, &log)

	// Registration provisions the new user's contact book through this hook
	authUsecaseInstance.SetContactBookSetup(contactUsecaseInstance.CreateBook)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, contactUsecaseInstance, validate, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
