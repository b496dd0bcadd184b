package main

import (
	"log"
	"os"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/api/routes"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/classifier"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/config"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/AmrrSalem/dsnd-dashboard-project/docs" // This is needed for swag
)

//	@title			Employee Events Dashboard API
//	@version		1.0
//	@description	Reports and recruitment-risk predictions for employees and teams.

//	@host		localhost:5001
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		Driver:       cfg.DatabaseDriver,
		MaxOpenConns: cfg.MaxOpenConns,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	if err := database.Ping(db); err != nil {
		logrus.WithError(err).Warn("Database not reachable at startup, reports will be empty until it is")
	}

	// Load the classifier once; every request shares it
	model, err := classifier.LoadOrDefault(cfg.ModelPath)
	if err != nil {
		logrus.Fatal("Failed to load classifier:", err)
	}
	logrus.WithField("model_path", cfg.ModelPath).Info("Classifier loaded")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, model)

	logrus.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"driver": cfg.DatabaseDriver,
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
