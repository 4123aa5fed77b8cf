package main

import (
	"log"

	"wardrobe-rental/cmd"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/wire"
	"wardrobe-rental/pkg/database"
	"wardrobe-rental/pkg/storage"
	"wardrobe-rental/pkg/utils"

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

	// Calendar math (availability, week buckets) runs in this zone
	loc, err := config.Location()
	if err != nil {
		logger.Fatal("Failed to load timezone",
			zap.Error(err),
			zap.String("timezone", config.App.Timezone),
		)
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Upload storage for product images and the receipt logo
	files := storage.NewLocalStore(config.Storage, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, files, loc, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
