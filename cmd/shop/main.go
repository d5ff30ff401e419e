package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/rl1809/shop-sim/internal/adapter/handler"
	"github.com/rl1809/shop-sim/internal/adapter/storage"
	"github.com/rl1809/shop-sim/internal/config"
	"github.com/rl1809/shop-sim/internal/core/domain"
	"github.com/rl1809/shop-sim/internal/core/service"
	"github.com/rl1809/shop-sim/internal/logger"
	"github.com/rl1809/shop-sim/internal/port"
)

const serviceName = "shop-sim"

func main() {
	// SIGINT keeps its default behaviour: stdin reads cannot be interrupted.
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New(serviceName, cfg.LogLevel)

	trail, closeTrail, err := storage.OpenAuditTrail(ctx, cfg)
	if err != nil {
		log.Error("failed to open audit trail",
			slog.String("sink", cfg.AuditSink),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	sessionID := uuid.New().String()
	ctx = logger.WithSessionID(ctx, sessionID)
	defer closeAuditTrail(ctx, log, closeTrail)
	log.InfoContext(ctx, "session started",
		slog.String("session_id", sessionID),
		slog.String("audit_sink", cfg.AuditSink),
	)

	if err := run(ctx, trail, os.Stdin, os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "session ended with error", slog.String("error", err.Error()))
		closeAuditTrail(ctx, log, closeTrail)
		os.Exit(1)
	}

	log.InfoContext(ctx, "session ended")
}

func closeAuditTrail(ctx context.Context, log *slog.Logger, closeTrail func() error) {
	if err := closeTrail(); err != nil {
		logger.WithContext(ctx, log).ErrorContext(ctx, "failed to close audit trail",
			slog.String("error", err.Error()),
		)
	}
}

// run wires one session: a single cart and ledger owned by the order service
// for the lifetime of the console loop.
func run(ctx context.Context, audit port.AuditSink, in io.Reader, out io.Writer, log *slog.Logger) error {
	orderService := service.NewOrderService(
		domain.DefaultCatalog(),
		domain.NewCart(),
		domain.NewOrderLedger(),
		audit,
		out,
		log,
	)
	return handler.NewConsole(orderService, in, out).Run(ctx)
}
