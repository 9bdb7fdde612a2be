package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"referral-coordination-backend/internal/config"
	"referral-coordination-backend/internal/database"
	"referral-coordination-backend/internal/handler"
	"referral-coordination-backend/internal/middleware"
	"referral-coordination-backend/internal/repository"
	"referral-coordination-backend/internal/service"
	"referral-coordination-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// 3. Initialize repositories
	orgRepo := repository.NewOrganizationRepo(db)
	referralRepo := repository.NewReferralRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 4. Initialize services
	orgService := service.NewOrganizationService(orgRepo, auditRepo)
	referralService := service.NewReferralService(referralRepo, orgRepo, auditRepo)

	// 5. Select the token verifier
	var verifier auth.Verifier
	switch cfg.Auth.Mode {
	case "jwt":
		verifier = auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	default:
		verifier = auth.NewStaticVerifier(cfg.Auth.Token)
	}

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	orgHandler := handler.NewOrganizationHandler(orgService)
	referralHandler := handler.NewReferralHandler(referralService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Business routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(verifier))
	{
		orgs := api.Group("/organizations")
		{
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("", orgHandler.GetOrganizations)
			orgs.GET("/:id", orgHandler.GetOrganization)
			orgs.PUT("/:id/coverage", orgHandler.UpdateCoverageAreas)
			orgs.PATCH("/:id", orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", orgHandler.DeleteOrganization)
		}

		referrals := api.Group("/referrals")
		{
			referrals.POST("", referralHandler.CreateReferral)
			referrals.GET("", referralHandler.GetReferrals)
			referrals.PATCH("/:id/status", referralHandler.UpdateReferralStatus)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
