package main

import (
	"log"

	"store-ratings/cmd"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/usecase"
	"store-ratings/internal/wire"
	"store-ratings/pkg/database"
	"store-ratings/pkg/token"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database and apply migrations
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories, token manager, and services
	repos := repository.NewRepository(db, logger)
	tokens := token.NewJWT(config.JWT.Secret, config.JWT.ExpiryHours)
	service := usecase.NewService(repos, tokens, logger)

	// Wire all dependencies
	app := wire.Wiring(service, tokens, config, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
