package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/comitanigiacomo/kanso-calendar/docs"
	"github.com/comitanigiacomo/kanso-calendar/internal/config"
)

// @title        Kanso Calendar API
// @version      1.0
// @description  Daily habit checklist with progress history, streaks, monthly reports and reminders.
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	app, err := newApplication(startCtx, cfg)
	cancelStart()
	if err != nil {
		log.Fatalf("Critical: failed to start: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Calendar running on http://localhost:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}
	app.close()

	log.Println("Server stopped gracefully.")
}
