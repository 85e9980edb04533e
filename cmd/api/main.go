// Sleep Metrics API
//
// REST API for deriving sleep metrics from raw platform health samples.
//
//	@title			Sleep Metrics API
//	@version		1.0
//	@description	Derive per-night sleep scores, debt and bedtime recommendations from raw stage samples and vital buckets.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User and sleep-goal management endpoints
//
//	@tag.name			samples
//	@tag.description	Raw health sample ingest and listing endpoints
//
//	@tag.name			nights
//	@tag.description	Derived per-night metrics endpoints
//
//	@tag.name			sleep
//	@tag.description	Sleep debt and bedtime recommendation endpoints
//
//	@tag.name			sleep-insights
//	@tag.description	LLM-powered sleep insight endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mbeaufort/sleep-metrics/internal/api"
	"github.com/mbeaufort/sleep-metrics/internal/api/handler"
	"github.com/mbeaufort/sleep-metrics/internal/config"
	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/mbeaufort/sleep-metrics/internal/langfuse"
	"github.com/mbeaufort/sleep-metrics/internal/llm"
	"github.com/mbeaufort/sleep-metrics/internal/repository"
	"github.com/mbeaufort/sleep-metrics/internal/seed"
	"github.com/mbeaufort/sleep-metrics/internal/service"
	"github.com/mbeaufort/sleep-metrics/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.UserSettings{}, &domain.StageSample{}, &domain.VitalSample{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize OpenTelemetry (no-op unless Langfuse is configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-metrics-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize Langfuse client (no-op if not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	healthRepo := repository.NewHealthDataRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, settingsRepo)
	sampleService := service.NewSampleService(healthRepo, userRepo)
	nightService := service.NewNightService(healthRepo, settingsRepo, userRepo)
	recommendationService := service.NewRecommendationService(nightService, settingsRepo, userRepo)
	activityService := service.NewActivityService(healthRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize insights service
	insightsService := service.NewInsightsService(nightService, recommendationService, openaiClient, settingsRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sampleHandler := handler.NewSampleHandler(sampleService)
	nightHandler := handler.NewNightHandler(nightService, recommendationService, activityService)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, sampleHandler, nightHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
