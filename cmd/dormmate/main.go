package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dormmate/dormmate/internal/assistant"
	"github.com/dormmate/dormmate/internal/database"
	"github.com/dormmate/dormmate/internal/logging"
	"github.com/dormmate/dormmate/internal/server"
)

func main() {
	logger := logging.Setup(os.Getenv("DORMMATE_LOG_LEVEL"))

	port := os.Getenv("DORMMATE_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DORMMATE_DB_PATH")
	if dbPath == "" {
		dbPath = "dormmate.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	aiCfg := assistant.Config{
		APIKey: os.Getenv("DORMMATE_AI_API_KEY"),
		Model:  os.Getenv("DORMMATE_AI_MODEL"),
	}
	aiClient := assistant.NewClient(aiCfg)
	if !aiClient.Configured() {
		logger.Warn("assistant API key not set, chat and game prompts will answer with fallbacks")
	}

	srv := server.New(db, aiClient, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("DormMate running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
