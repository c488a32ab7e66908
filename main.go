package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file found, using process environment")
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"MISSIONS_COLLECTION",
		"PROGRESS_COLLECTION",
		"MOODS_COLLECTION",
		"ACHIEVEMENTS_COLLECTION",
		"GENERATOR_URL",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize MongoDB connection
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter(engineCfg config.EngineConfig, store *usecase.MissionStore, progression *usecase.ProgressionEngine, moodService *usecase.MoodService, achievementsRepo *repository.AchievementsRepo, moodsRepo *repository.MoodsRepo) *gin.Engine {
	// Create default gin router
	router := gin.Default()

	// Initialize handlers
	missionsHandler := handler.NewMissionsHandler(store, progression, engineCfg.DefaultMissionCount)
	progressHandler := handler.NewProgressHandler(progression)
	moodHandler := handler.NewMoodHandler(moodService)
	achievementsHandler := handler.NewAchievementsHandler(achievementsRepo)
	statsHandler := handler.NewStatsHandler(store, progression, moodsRepo)

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes (caller identified by X-User-ID header)
	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware())
	{
		api.POST("/path", missionsHandler.SelectPath)

		missions := api.Group("/missions")
		{
			missions.GET("/", middleware.CacheControlMiddleware("5"), missionsHandler.GetMissions)
			missions.POST("/", missionsHandler.AddMission)
			missions.POST("/:id/complete", missionsHandler.CompleteMission)
			missions.POST("/generate", missionsHandler.GenerateAIMission)
		}

		api.GET("/progress", progressHandler.GetProgress)
		api.POST("/mood", moodHandler.SubmitMood)
		api.GET("/moods", middleware.CacheControlMiddleware("30"), moodHandler.GetMoods)
		api.GET("/achievements", achievementsHandler.GetAchievements)
		api.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	engineCfg := config.LoadEngineConfig()

	// Initialize repositories
	missionsRepo := repository.GetMissionsRepo(utils.MongoClient)
	progressRepo := repository.GetProgressRepo(utils.MongoClient)
	moodsRepo := repository.GetMoodsRepo(utils.MongoClient)
	achievementsRepo := repository.GetAchievementsRepo(utils.MongoClient)

	dbCfg := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbCfg.DatabaseName)); err != nil {
		log.Printf("Warning: failed to set up indexes: %v", err)
	}

	// Progress cache is optional: the engine falls back to Mongo reads
	var cache usecase.ProgressCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		progressCache, err := services.NewProgressCache(redisURL, engineCfg.ProgressCacheTTL)
		if err != nil {
			log.Printf("Warning: progress cache disabled: %v", err)
		} else {
			cache = progressCache
			defer progressCache.Close()
		}
	}

	// Initialize engine
	evaluator := usecase.NewAchievementEvaluator(progressRepo, achievementsRepo, moodsRepo)
	progression := usecase.NewProgressionEngine(progressRepo, cache, evaluator)
	generator := services.NewHTTPGenerator(engineCfg.GeneratorURL, engineCfg.GeneratorTimeout)
	store := usecase.NewMissionStore(generator, missionsRepo, progression)
	moodService := usecase.NewMoodService(moodsRepo, progression)

	// Start the reset scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	scheduler := services.NewResetScheduler(store, engineCfg.ResetCheckInterval)
	scheduler.Start(schedulerCtx)

	router := setupRouter(engineCfg, store, progression, moodService, achievementsRepo, moodsRepo)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	stopScheduler()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
