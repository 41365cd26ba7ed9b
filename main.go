package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"socialnet/config"
	"socialnet/controllers"
	"socialnet/database"
	"socialnet/initializers"
	"socialnet/logger"
	"socialnet/middlewares"
	"socialnet/repository"
	"socialnet/routes"
	"socialnet/services"
	"socialnet/token"
)

func main() {
	initializers.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.L().Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	userRepo := repository.NewMongoUserRepository(client, database.OpenCollection(client, cfg.DBName, "users"))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		logger.L().Fatal().Err(err).Msg("failed to create user indexes")
	}
	postRepo := repository.NewMongoPostRepository(database.OpenCollection(client, cfg.DBName, "posts"))
	messageRepo := repository.NewMongoMessageRepository(database.OpenCollection(client, cfg.DBName, "messages"))
	notificationRepo := repository.NewMongoNotificationRepository(database.OpenCollection(client, cfg.DBName, "notifications"))

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, tokens)
	socialService := services.NewSocialService(userRepo, notificationService)
	postService := services.NewPostService(postRepo, userRepo, notificationService)
	messageService := services.NewMessageService(messageRepo, userRepo, notificationService)
	searchService := services.NewSearchService(userRepo, postRepo, cfg.SearchLimit)

	router := gin.New()
	router.Use(logger.Middleware(logger.L()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := middlewares.RequireAuth(tokens)
	api := router.Group("/api")

	routes.HomeRouter(api)
	routes.AuthRouter(api, controllers.NewAuthController(authService))
	routes.UserRouter(api, auth, controllers.NewUserController(socialService))
	routes.PostRouter(api, auth, controllers.NewPostController(postService))
	routes.MessageRouter(api, auth, controllers.NewMessageController(messageService))
	routes.NotificationRouter(api, auth, controllers.NewNotificationController(notificationService))
	routes.SearchRouter(api, auth, controllers.NewSearchController(searchService))

	logger.L().Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal().Err(err).Msg("server stopped")
	}
}
