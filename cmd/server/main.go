package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dkuznetsova/staff-accounts-api/internal/config"
	"github.com/dkuznetsova/staff-accounts-api/internal/constants"
	"github.com/dkuznetsova/staff-accounts-api/internal/database"
	"github.com/dkuznetsova/staff-accounts-api/internal/handlers"
	"github.com/dkuznetsova/staff-accounts-api/internal/middleware"
	"github.com/dkuznetsova/staff-accounts-api/internal/repository"
	"github.com/dkuznetsova/staff-accounts-api/internal/services"
)

func main() {
	// .env is optional; real deployments supply the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize mailer when SMTP is configured
	var mailer *services.Mailer
	if cfg.SMTPHost != "" {
		mailer, err = services.NewMailer(cfg)
		if err != nil {
			log.Fatalf("Failed to configure mailer: %v", err)
		}
	}

	// Initialize repositories and services
	db := database.GetDB()
	accountRepo := repository.NewAccountRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	accountService := services.NewAccountService(accountRepo, catalogRepo)
	authService := services.NewAuthService(accountRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService, catalogRepo, mailer)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Staff Accounts API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentAccount)
		}

		// Account routes (protected)
		accounts := api.Group("/accounts")
		accounts.Use(middleware.RequireAuth())
		{
			accounts.GET("", accountHandler.List)
			accounts.GET("/new", accountHandler.NewForm)
			accounts.POST("", accountHandler.Create)
			accounts.GET("/:id", accountHandler.Details)
			accounts.GET("/:id/edit", accountHandler.EditForm)
			accounts.PUT("/:id", accountHandler.Update)
			accounts.GET("/:id/delete", accountHandler.DeleteForm)
			accounts.DELETE("/:id", accountHandler.Delete)
		}

		// Catalog routes (protected)
		catalog := api.Group("")
		catalog.Use(middleware.RequireAuth())
		{
			catalog.GET("/roles", catalogHandler.ListRoles)
			catalog.POST("/roles", catalogHandler.CreateRole)
			catalog.GET("/functions", catalogHandler.ListFunctions)
			catalog.POST("/functions", catalogHandler.CreateFunction)
			catalog.GET("/assignments", catalogHandler.ListAssignments)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
