package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/wenjun/instaclone/internal/router"
	"github.com/wenjun/instaclone/pkg/config"
	"github.com/wenjun/instaclone/pkg/firebase"
	"github.com/wenjun/instaclone/validators"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseApp.Close()

	// Mongo is only dialed when it backs the document store
	var mongoClient *mongo.Client
	if cfg.StoreBackend == "mongo" {
		mongoClient, err = config.InitMongo(cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		defer config.CloseMongo(mongoClient)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, firebaseApp, mongoClient, logger)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
