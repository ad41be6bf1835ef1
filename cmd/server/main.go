// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/credlens/fakenews-detector/internal/analyzer"
	"github.com/credlens/fakenews-detector/internal/config"
	"github.com/credlens/fakenews-detector/internal/llm"
	"github.com/credlens/fakenews-detector/internal/server"
)

func main() {
	// Local development convenience; the file is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.NewProvider(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create model provider: %v", err)
	}

	analyzer := analyzer.New(provider)

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
