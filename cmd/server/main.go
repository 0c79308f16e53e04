package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allergy-assistant/internal/config"
	"allergy-assistant/internal/handlers"
	"allergy-assistant/internal/router"
	"allergy-assistant/internal/services"
)

func main() {
	log.Println("🚀 Starting Allergy Assistant...")

	// ──── Step 1: Load Environment Variables ────
	cfg := loadConfig()
	log.Printf("✓ Environment variables loaded (env=%s, debug=%t)", cfg.Env, cfg.Debug)

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model=%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(cfg, chatHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Allergy Assistant ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat:   POST http://localhost:%s/chat", cfg.Port)
	log.Printf("  Health: GET  http://localhost:%s/health", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig converts the config panic for a missing credential into a
// fatal log line.
func loadConfig() (cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("✗ Configuration error: %v. Set it in the environment or the .env file.", r)
		}
	}()
	return config.Load()
}
