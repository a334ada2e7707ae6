package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/config"
	"github.com/BossEnterprises/chataru_api/internal/database"
	"github.com/BossEnterprises/chataru_api/internal/handler"
	"github.com/BossEnterprises/chataru_api/internal/middleware"
	"github.com/BossEnterprises/chataru_api/internal/repository"
	"github.com/BossEnterprises/chataru_api/internal/session"
	"github.com/BossEnterprises/chataru_api/internal/upload"
)

// main is the application entrypoint for the Chataru Craft backend.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting chataru api")
	if cfg.AdminPassword == config.DefaultAdminPassword {
		log.Warn().Msg("ADMIN_PASSWORD not set - using insecure default")
	}

	// 3. Connect database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Ensure schema
	if err := repository.InitSchema(context.Background(), db); err != nil {
		log.Error().Err(err).Msg("schema init failed")
		fmt.Fprintf(os.Stderr, "schema init failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("schema ensured")

	// 4. Initialize upload store (creates the upload directory)
	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Error().Err(err).Msg("upload store init failed")
		fmt.Fprintf(os.Stderr, "upload store init failed: %v\n", err)
		os.Exit(1)
	}

	// 5. Initialize session store
	sessions := session.NewStore(session.MaxAge)

	// 6. Initialize repositories
	enquiryRepo := repository.NewEnquiryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(),
		Enquiry:           handler.NewEnquiryHandler(enquiryRepo),
		Product:           handler.NewProductHandler(productRepo),
		ProductManagement: handler.NewProductManagementHandler(productRepo, uploads),
		Auth:              handler.NewAuthHandler(sessions, cfg.AdminPassword),
	}

	// 8. Initialize middleware
	adminMw := middleware.NewAdminMiddleware(sessions)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	router.Use(middleware.LoggingMiddleware())
	router.Static(upload.MountPrefix, cfg.UploadDir)
	setupRoutes(router, handlers, adminMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Enquiry           *handler.EnquiryHandler
	Product           *handler.ProductHandler
	ProductManagement *handler.ProductManagementHandler
	Auth              *handler.AuthHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, adminMiddleware *middleware.AdminMiddleware) {
	router.GET("/health", handlers.Health.GetHealth)

	// Public API
	api := router.Group("/api")
	{
		api.POST("/enquiry", handlers.Enquiry.Create)
		api.GET("/products", handlers.Product.List)
	}

	// Admin routes; login and logout stay unguarded
	admin := api.Group("/admin")
	admin.POST("/login", handlers.Auth.Login)
	admin.POST("/logout", handlers.Auth.Logout)
	admin.Use(adminMiddleware.Handle())
	{
		admin.GET("/enquiries", handlers.Enquiry.List)
		admin.POST("/products", handlers.ProductManagement.Create)
		admin.PUT("/products/:id", handlers.ProductManagement.Update)
		admin.DELETE("/products/:id", handlers.ProductManagement.Delete)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
