// @title KazVocab API
// @version 1.0
// @description Kazakh vocabulary trainer: multiple-choice quizzes with spaced repetition.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"kazvocab/internal/adapter"
	"kazvocab/internal/adapter/hintgen"
	"kazvocab/internal/cache"
	"kazvocab/internal/config"
	"kazvocab/internal/database"
	"kazvocab/internal/domain"
	"kazvocab/internal/handler"
	"kazvocab/internal/logger"
	"kazvocab/internal/middleware"
	"kazvocab/internal/quizgen"
	"kazvocab/internal/repository"
	"kazvocab/internal/service"

	_ "kazvocab/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its status and duration.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Oracle database")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	wordRepository := repository.NewWordDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	userRepository := repository.NewSQLXUserRepository(db)

	sessionStore := service.NewCacheSessionStore(cacheAdapter, cfg.Quiz.SessionTTL)

	var hintGenerator domain.HintGenerator
	if cfg.Hint.Enabled {
		llm, err := hintgen.NewOllamaLLM(cfg.Hint)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama client for hints", zap.Error(err))
		}
		hintGenerator = hintgen.NewOllamaHintGenerator(llm, cacheAdapter, cfg.Hint)
		appLogger.Info("Hint generator initialized",
			zap.String("server_url", cfg.Hint.ServerURL),
			zap.String("model", cfg.Hint.Model),
		)
	} else {
		appLogger.Info("Hint generation disabled")
	}

	generator := quizgen.NewSeeded(time.Now().UnixNano())
	quizService := service.NewQuizService(generator, wordRepository, attemptRepository, sessionStore, hintGenerator, cfg)
	wordService := service.NewWordService(wordRepository)
	userService := service.NewUserService(userRepository, attemptRepository)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	quizHandler := handler.NewQuizHandler(quizService, wordService, cfg)
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMyProfile)
	userGroup.Get("/me/attempts", userHandler.GetMyAttempts)
	userGroup.Get("/me/stats", userHandler.GetMyStats)

	// Quiz routes accept anonymous users; authenticated ones get their
	// personal word tiers and progress tracking.
	quizGroup := apiGroup.Group("/quiz", middleware.OptionalAuth(authService))
	quizGroup.Post("/start", quizHandler.StartQuiz)
	quizGroup.Post("/answer", quizHandler.SubmitAnswer)
	quizGroup.Post("/complete", quizHandler.CompleteQuiz)

	apiGroup.Get("/words", quizHandler.ListWords)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		appLogger.Error("Failed to close database", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Error("Failed to close Redis client", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
