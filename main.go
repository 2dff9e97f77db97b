package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hashly/database"
	"hashly/handlers"
	"hashly/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting Hashly server...")

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET not set, using insecure default")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data.db"
	}

	// ===== CONNECT TO DATABASE WITH RETRY =====
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.Connect(dbPath); err != nil {
			dbErr = err
			log.Printf("Database connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to database:", dbErr)
	}
	defer database.Disconnect()

	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// ===== UPLOAD DIRECTORY =====
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "static/uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	handlers.SetUploadDir(uploadDir)

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter()

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server stopped gracefully")
}
