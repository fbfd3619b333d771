package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/wenjun/instaclone/internal/client"
	"github.com/wenjun/instaclone/internal/handlers"
	"github.com/wenjun/instaclone/internal/identity"
	"github.com/wenjun/instaclone/internal/middleware"
	"github.com/wenjun/instaclone/internal/repositories"
	"github.com/wenjun/instaclone/pkg/config"
	"github.com/wenjun/instaclone/pkg/firebase"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const mongoDatabase = "instaclone"

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes wires the repositories, identity service, session hub and all
// application routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, fb *firebase.App, mongoClient *mongo.Client, logger *zap.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	var (
		userRepo       repositories.UserRepository
		postRepo       repositories.PostRepository
		commentRepo    repositories.CommentRepository
		credentialRepo repositories.CredentialRepository
	)
	if cfg.StoreBackend == "mongo" {
		db := mongoClient.Database(mongoDatabase)
		userRepo = repositories.NewMongoUserRepository(db)
		postRepo = repositories.NewMongoPostRepository(db)
		commentRepo = repositories.NewMongoCommentRepository(db)
		credentialRepo = repositories.NewMongoCredentialRepository(db)
		log.Println("Document store backend: MongoDB")
	} else {
		userRepo = repositories.NewFirestoreUserRepository(fb.Firestore)
		postRepo = repositories.NewFirestorePostRepository(fb.Firestore)
		commentRepo = repositories.NewFirestoreCommentRepository(fb.Firestore)
		credentialRepo = repositories.NewFirestoreCredentialRepository(fb.Firestore)
		log.Println("Document store backend: Firestore")
	}

	mediaStore := repositories.NewFirebaseMediaStore(fb.Bucket, fb.BucketName)

	// --- Identity service ---
	var identitySvc identity.Service
	if cfg.IdentityMode == "local" {
		identitySvc = identity.NewLocalService(credentialRepo)
		log.Println("Identity mode: local credentials")
	} else {
		identitySvc = identity.NewFirebaseService(fb.AuthClient, cfg.FirebaseAPIKey)
		log.Println("Identity mode: Firebase Authentication")
	}

	// --- Session hub ---
	hub := handlers.NewHub(func() *client.Client {
		return client.New(identitySvc, userRepo, postRepo, commentRepo, mediaStore, logger)
	})

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(hub, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authHandler.RegisterSessionRoutes(api)

	userHandler := handlers.NewUserHandler(hub)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	postHandler := handlers.NewPostHandler(hub)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(hub)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	stateHandler := handlers.NewStateHandler(hub)
	stateHandler.RegisterStateRoutes(api)
	log.Println("State routes configured.")

	log.Println("All routes configured.")
}
