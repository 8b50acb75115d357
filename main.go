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

	"github.com/lexandes/agent/internal/adapter/llm"
	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/config"
	"github.com/lexandes/agent/internal/executor"
	"github.com/lexandes/agent/internal/lawtext"
	"github.com/lexandes/agent/internal/pipeline"
	"github.com/lexandes/agent/internal/repository"
	"github.com/lexandes/agent/internal/service"
	transport "github.com/lexandes/agent/internal/transport/http"
	"github.com/lexandes/agent/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting compliance agent...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("LLM URL: %s", cfg.LLMBaseURL)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize law catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.CatalogPath, err)
		}
		log.Printf("Loaded catalog from %s (%d laws)", cfg.CatalogPath, len(cat.Laws()))
	}

	// Initialize LLM client
	llmClient := llm.NewCompletionClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	// Initialize intake policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize executor over the pipeline
	deps := &pipeline.Deps{
		LLM:     llmClient,
		Catalog: cat,
		Loader:  lawtext.NewLoader(db, cat, cfg.LawTextDir),
		Config:  cfg,
	}
	exec := executor.New(db, deps, pipeline.Pipeline())

	// Initialize service and HTTP server
	svc := service.New(db, cat, exec, policyEngine, cfg)
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down compliance agent...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Compliance agent stopped")
}
