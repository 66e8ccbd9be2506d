package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lodging-backend/config"
	"lodging-backend/controllers"
	"lodging-backend/middleware"
	"lodging-backend/routes"
	"lodging-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create upload/export directories: %v", err)
	}

	middleware.InitJWT(cfg.JWTSecret)

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	groupService := services.NewGroupService(db)
	guestService := services.NewGuestService(db)
	reportService := services.NewReportService(db)
	userService := services.NewUserService(db)
	importService := services.NewImportService(guestService, cfg.UploadDir)
	exportService := services.NewExportService(db, cfg.ExportDir)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	groupController := controllers.NewGroupController(groupService)
	guestController := controllers.NewGuestController(guestService, importService)
	reportController := controllers.NewReportController(reportService)
	userController := controllers.NewUserController(userService)
	exportController := controllers.NewExportController(exportService)

	// Build router
	router := routes.SetupRouter(
		authController,
		groupController,
		guestController,
		reportController,
		userController,
		exportController,
		cfg.UploadDir,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
