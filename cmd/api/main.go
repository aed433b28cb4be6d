package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"

	"github.com/lisahub/agent-hub-be/internal/core/i18n"
	"github.com/lisahub/agent-hub-be/internal/core/plan"
	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/handlers"
	"github.com/lisahub/agent-hub-be/internal/services"
	"github.com/lisahub/agent-hub-be/internal/shared/config"
	"github.com/lisahub/agent-hub-be/internal/shared/database"
	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

// @title Agent Hub API
// @version 1.0
// @description Backend for the WhatsApp AI agent dashboard
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting agent-hub-api on port %s", cfg.Port)

	// Init preference database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Init webhook notifier
	notifier := webhook.NewClient(cfg.WebhookURL)
	if cfg.WebhookURL == "" {
		log.Printf("⚠️  Webhook URL not configured, mutation events disabled")
	} else {
		log.Printf("📨 Webhook events enabled: %s", cfg.WebhookURL)
	}

	// Init stores
	planStore := plan.NewStore(db, plan.Tier(cfg.DefaultPlan))
	localeStore := i18n.NewStore(db, i18n.Locale(cfg.DefaultLocale))
	agentService := services.NewAgentService(notifier, planStore.CanAddIntegration)
	chatHistory := services.NewChatHistoryService(db)
	preferences := services.NewPreferenceService(db)
	log.Printf("💼 Active plan: %s", planStore.Current())

	// Periodic stats refresh keeps the live agent counters warm
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.StatsCronSpec, func() {
		stats := agentService.LoadStats()
		utils.LogInfo("stats refreshed", map[string]interface{}{
			"total_agents":  stats.TotalAgents,
			"active_agents": stats.ActiveAgents,
		})
	}); err != nil {
		log.Fatalf("Failed to schedule stats refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Init handlers
	validate := validator.New()
	agentHandler := handlers.NewAgentHandler(agentService, planStore, validate)
	faqHandler := handlers.NewFAQHandler(agentService, validate)
	productHandler := handlers.NewProductHandler(agentService, validate)
	contactHandler := handlers.NewContactHandler(agentService, validate)
	conversationHandler := handlers.NewConversationHandler(agentService, validate)
	integrationHandler := handlers.NewIntegrationHandler(agentService, validate)
	trainingHandler := handlers.NewTrainingHandler(agentService, validate)
	chatHandler := handlers.NewChatHandler(chatHistory, validate)
	planHandler := handlers.NewPlanHandler(planStore)
	localeHandler := handlers.NewLocaleHandler(localeStore)
	preferenceHandler := handlers.NewPreferenceHandler(preferences)
	healthHandler := handlers.NewHealthHandler(agentService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Agent Hub API",
	})

	// Middleware
	app.Use(cors.New())

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Agent routes
	app.Get("/agents", agentHandler.ListAgents)
	app.Post("/agents", agentHandler.CreateAgent)
	app.Get("/agents/current", agentHandler.GetCurrentAgent)
	app.Put("/agents/current", agentHandler.SetCurrentAgent)
	app.Get("/agents/:id", agentHandler.GetAgent)
	app.Put("/agents/:id", agentHandler.UpdateAgent)
	app.Delete("/agents/:id", agentHandler.DeleteAgent)
	app.Put("/agents/:id/social-links", agentHandler.UpdateSocialLinks)

	// Dashboard stats
	app.Get("/stats", agentHandler.GetStats)
	app.Get("/stats/weekly", agentHandler.GetWeeklyMessages)

	// FAQ routes
	app.Get("/agents/:id/faqs", faqHandler.ListFAQs)
	app.Post("/agents/:id/faqs/templates", faqHandler.LoadFAQTemplates)
	app.Get("/faq-templates", faqHandler.ListFAQTemplates)
	app.Post("/faqs", faqHandler.CreateFAQ)
	app.Put("/faqs/:id", faqHandler.UpdateFAQ)
	app.Delete("/faqs/:id", faqHandler.DeleteFAQ)

	// Product routes
	app.Get("/agents/:id/products", productHandler.ListProducts)
	app.Post("/products", productHandler.CreateProduct)
	app.Post("/products/import", productHandler.ImportProducts)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)

	// Contact routes
	app.Get("/agents/:id/contacts", contactHandler.ListContacts)
	app.Post("/contacts", contactHandler.CreateContact)
	app.Put("/contacts/:id", contactHandler.UpdateContact)
	app.Delete("/contacts/:id", contactHandler.DeleteContact)

	// Conversation routes
	app.Get("/agents/:id/conversations", conversationHandler.ListConversations)
	app.Get("/conversations/:id/messages", conversationHandler.ListMessages)
	app.Post("/conversations/:id/messages", conversationHandler.AddMessage)
	app.Put("/conversations/:id/status", conversationHandler.SetStatus)
	app.Post("/conversations/:id/toggle-mode", conversationHandler.ToggleMode)
	app.Post("/conversations/:id/resolve", conversationHandler.Resolve)
	app.Put("/conversations/:id/tags", conversationHandler.TagConversation)
	app.Get("/agents/:id/tags", conversationHandler.ListTags)
	app.Post("/agents/:id/tags", conversationHandler.CreateTag)
	app.Delete("/tags/:id", conversationHandler.DeleteTag)

	// CRM routes
	app.Get("/agents/:id/clients", conversationHandler.ListClients)
	app.Put("/clients/:id", conversationHandler.UpdateClient)

	// Integration routes
	app.Get("/agents/:id/integrations", integrationHandler.ListIntegrations)
	app.Post("/integrations/:id/toggle", integrationHandler.ToggleIntegration)
	app.Put("/integrations/:id/config", integrationHandler.ConfigureIntegration)

	// Training routes
	app.Get("/agents/:id/training", trainingHandler.ListTrainingMessages)
	app.Post("/agents/:id/training", trainingHandler.SendTrainingMessage)
	app.Delete("/agents/:id/training", trainingHandler.ClearTrainingMessages)
	app.Get("/agents/:id/prompt", trainingHandler.GetSystemPrompt)
	app.Get("/prompt/preview", trainingHandler.PreviewPrompt)

	// Assistant chat history
	app.Get("/chat/sessions", chatHandler.ListSessions)
	app.Post("/chat/sessions", chatHandler.CreateSession)
	app.Get("/chat/sessions/:id", chatHandler.GetSession)
	app.Post("/chat/sessions/:id/messages", chatHandler.AddMessage)
	app.Delete("/chat/sessions/:id", chatHandler.DeleteSession)

	// Plan routes
	app.Get("/plan", planHandler.GetPlan)
	app.Put("/plan", planHandler.SelectPlan)
	app.Get("/plan/features", planHandler.ListFeatures)

	// Locale routes
	app.Get("/locale", localeHandler.GetLocale)
	app.Put("/locale", localeHandler.SetLocale)

	// UI preferences
	app.Get("/preferences", preferenceHandler.GetPreferences)
	app.Put("/preferences", preferenceHandler.SetPreferences)
	app.Post("/preferences/sidebar/toggle", preferenceHandler.ToggleSidebar)

	log.Fatal(app.Listen(":" + cfg.Port))
}
