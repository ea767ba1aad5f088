package main

import (
	"alcyxob/training-tracker/internal/api"
	"alcyxob/training-tracker/internal/config"
	"alcyxob/training-tracker/internal/repository/sqlite"
	"alcyxob/training-tracker/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Training Tracker API
// @version 1.0
// @description API for recording exercise sessions and their calorie estimates.
// @host localhost:8080
// @BasePath /
func main() {
	log.Println("Starting Training Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	db, err := sqlite.OpenDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer func() {
		log.Println("Closing database...")
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()
	log.Println("Database connection established.")

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	exerciseRepo := sqlite.NewSQLiteExerciseRepo(db)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	exerciseService := service.NewExerciseService(exerciseRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the requests it is currently handling
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
