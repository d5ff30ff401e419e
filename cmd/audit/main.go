package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rl1809/shop-sim/internal/adapter/storage"
	"github.com/rl1809/shop-sim/internal/config"
	"github.com/rl1809/shop-sim/internal/logger"
)

// audit prints the checkout audit trail from the configured backend.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New("shop-audit", cfg.LogLevel)

	trail, closeTrail, err := storage.OpenAuditTrail(ctx, cfg)
	if err != nil {
		log.Error("failed to open audit trail", slog.String("error", err.Error()))
		os.Exit(1)
	}
	closeOrLog := func() {
		if err := closeTrail(); err != nil {
			log.Error("failed to close audit trail", slog.String("error", err.Error()))
		}
	}
	defer closeOrLog()

	lines, err := trail.Lines(ctx)
	if err != nil {
		log.Error("failed to read audit trail", slog.String("error", err.Error()))
		closeOrLog()
		os.Exit(1)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	log.Info("audit trail read",
		slog.String("sink", cfg.AuditSink),
		slog.Int("records", len(lines)),
	)
}
