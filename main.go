// main.go
package main

import (
	"context"
	"log"
	"time"

	"cinerank-auth/cmd"
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/internal/wire"
	"cinerank-auth/pkg/database"
	"cinerank-auth/pkg/notify"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
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
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)
	if !config.IsProduction() {
		logger.Warn("Non-production profile: OTP responses include devCode")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repos.Schema.Ensure(schemaCtx); err != nil {
		logger.Warn("Schema ensure failed at startup, will retry on requests", zap.Error(err))
	}
	cancel()

	// Code delivery channels
	dispatcher, err := notify.New(context.Background(), config)
	if err != nil {
		logger.Fatal("Failed to configure code delivery", zap.Error(err))
	}
	logger.Info("Code delivery configured",
		zap.String("email_provider", config.Email.Provider),
		zap.String("sms_provider", config.SMS.Provider),
	)

	// Wire all dependencies
	app := wire.Wiring(repos, dispatcher, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
