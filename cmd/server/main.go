package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"probsolver-backend/internal/config"
	"probsolver-backend/internal/handlers"
	"probsolver-backend/internal/router"
	"probsolver-backend/internal/services"
)

func main() {
	log.Println("🧠 ProbSolver AI Backend Starting...")
	log.Println("📝 Created by Naitik Khandelwal (NTK)")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Persona Instructions ────
	personas, err := services.LoadPersonas(cfg.PersonasFile)
	if err != nil {
		log.Fatalf("✗ Persona table failed to load: %v", err)
	}
	if cfg.PersonasFile != "" {
		log.Printf("✓ Persona overrides loaded from %s", cfg.PersonasFile)
	}
	log.Printf("✓ Modes: %s (default %s)", strings.Join(personas.Modes(), ", "), services.DefaultMode)

	// ──── Step 3: Initialize Gemini Client ────
	generator, err := services.NewGenerator(context.Background(), services.GeneratorOptions{
		SDK:         cfg.GeminiSDK,
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
		TopP:        cfg.GeminiTopP,
	})
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer generator.Close()
	log.Printf("✓ Gemini client initialized (%s, model %s)", cfg.GeminiSDK, cfg.GeminiModel)

	// ──── Step 4: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(personas, generator, cfg.ProviderTimeout)
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Leave room for the provider call on top of request handling.
		WriteTimeout: cfg.ProviderTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}
