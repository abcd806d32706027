// @title Career Compass API
// @version 1.0
// @description Career guidance assessment and recommendation API for students.
// @host localhost:8080
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

	"career-compass/internal/adapter"
	"career-compass/internal/adapter/summarizer"
	"career-compass/internal/cache"
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/domain"
	"career-compass/internal/handler"
	"career-compass/internal/logger"
	"career-compass/internal/middleware"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	_ "career-compass/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
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

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	resultRepository := repository.NewSQLXResultRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Initialize Redis client and cache services
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	resultCacheService := service.NewResultCacheService(cacheAdapter, cfg.CacheTTLs.LatestResult)

	// AI enrichment is optional: without an API key submissions are scored
	// and saved with the placeholder summary.
	var aiSummarizer domain.Summarizer
	if cfg.Gemini.APIKey != "" {
		aiSummarizer, err = summarizer.NewGeminiSummarizer(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Gemini summarizer", zap.Error(err))
		}
		appLogger.Info("Gemini summarizer initialized", zap.String("model", cfg.Gemini.Model))
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, AI summaries disabled")
	}

	// Initialize services
	assessmentService := service.NewAssessmentService(questionRepository, resultRepository, userRepository, resultCacheService, aiSummarizer, cfg)
	recommendationService := service.NewRecommendationService(userRepository, resultRepository, resultCacheService)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	userService := service.NewUserService(userRepository)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(assessmentService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// User routes (all protected)
	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetProfile)
	userGroup.Put("/me", userHandler.UpdateProfile)

	// Quiz routes
	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Get("/questions", quizHandler.GetQuestions)
	quizGroup.Post("/submit", middleware.Protected(authService), quizHandler.SubmitQuiz)
	quizGroup.Get("/results", middleware.Protected(authService), quizHandler.GetHistory)
	quizGroup.Get("/results/:id", middleware.Protected(authService), quizHandler.GetResult)

	// Recommendation routes (all protected)
	recGroup := apiGroup.Group("/recommendations", middleware.Protected(authService))
	recGroup.Get("/", recommendationHandler.GetRecommendations)
	recGroup.Post("/refresh", recommendationHandler.RefreshRecommendations)
	recGroup.Get("/compare-streams", recommendationHandler.CompareStreams)
	recGroup.Get("/career-paths/:stream", recommendationHandler.GetCareerPaths)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
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
	appLogger.Info("Server exited gracefully")
}
