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

	"github.com/stzanetis/BureaucracySimulator-BE/database"
	"github.com/stzanetis/BureaucracySimulator-BE/middleware"
	"github.com/stzanetis/BureaucracySimulator-BE/routes"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	// Validate required environment variables
	requiredEnvVars := []string{"BASIC_AUTH_USER", "SESSION_SECRET"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}
	if os.Getenv("BASIC_AUTH_PASS") == "" && os.Getenv("BASIC_AUTH_PASS_HASH") == "" {
		log.Fatal("Either BASIC_AUTH_PASS or BASIC_AUTH_PASS_HASH must be set")
	}

	// Optional document store; the game runs fully in-memory without it
	database.Connect(context.Background())

	// Initialize router
	router := routes.InitRouter()

	// Wrap router with global middleware in recommended order
	// Logging -> Security headers -> Request ID -> Max Body -> Timeout -> Recovery
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.RequestIDMiddleware(
				middleware.MaxBodyMiddleware(
					middleware.TimeoutMiddleware(
						middleware.RecoveryMiddleware(router),
					),
				),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Bureaucracy Simulator API listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	database.Disconnect(ctx)

	log.Println("Server exited")
}
