package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"

	"github.com/reviewpilot/review-pilot-be/internal/core/analysis"
	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/llm"
	"github.com/reviewpilot/review-pilot-be/internal/core/reply"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/handlers"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/services"
	"github.com/reviewpilot/review-pilot-be/internal/shared/config"
	"github.com/reviewpilot/review-pilot-be/internal/shared/database"
	"github.com/reviewpilot/review-pilot-be/internal/shared/utils"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting review-pilot-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	businessRepo := repositories.NewBusinessRepo(db.GORM)
	reviewRepo := repositories.NewReviewRepo(db.GORM)

	// Init LLM service (multi-provider support)
	llmService := llm.NewService()
	log.Printf("🤖 Using LLM provider: %s", llmService.GetProviderName())

	// Init reply engine, knowledge extractor and review analyzer
	engine := reply.NewEngine(llmService)
	extractor := knowledge.NewExtractor(llmService)
	analyzer := analysis.NewAnalyzer(llmService)

	// Init services
	reviewService := services.NewReviewService(reviewRepo, businessRepo, engine)
	analysisService := services.NewAnalysisService(reviewRepo, analyzer)
	knowledgeService := services.NewKnowledgeService(businessRepo, extractor)
	settingsService := services.NewSettingsService(businessRepo)
	simulationService := services.NewSimulationService(businessRepo, llmService)
	autoReplyService := services.NewAutoReplyService(reviewRepo, businessRepo, reviewService)

	// Init handlers
	reviewHandler := handlers.NewReviewHandler(reviewService, analysisService, businessRepo)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService, businessRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	simulateHandler := handlers.NewSimulateHandler(simulationService, businessRepo)
	healthHandler := handlers.NewHealthHandler(llmService)

	// Auto-reply scheduler
	if cfg.AutoReplyEnabled {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.AutoReplyCron, func() {
			autoReplyService.Run(context.Background())
		}); err != nil {
			log.Fatalf("Failed to schedule auto-reply job: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("⏰ Auto-reply scheduler enabled (%s)", cfg.AutoReplyCron)
	} else {
		log.Printf("⚠️  Auto-reply scheduler disabled")
	}

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "ReviewPilot API",
	})

	// Middleware
	app.Use(cors.New())

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Review routes
	app.Get("/reviews", reviewHandler.ListReviews)
	app.Post("/reviews/seed", reviewHandler.SeedReviews)
	app.Post("/reviews/analyze", reviewHandler.AnalyzeReviews)
	app.Post("/reviews/:id/generate-reply", reviewHandler.GenerateReply)
	app.Post("/reviews/:id/reply", reviewHandler.SaveReply)

	// Knowledge Base routes
	app.Get("/knowledge", knowledgeHandler.GetKnowledgeBase)
	app.Post("/knowledge/ingest", knowledgeHandler.Ingest)

	// Settings routes
	app.Get("/settings", settingsHandler.GetSettings)
	app.Put("/settings", settingsHandler.UpdateSettings)

	// Simulation route
	app.Post("/simulate", simulateHandler.Simulate)

	// Start server
	log.Printf("✅ review-pilot-api running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
