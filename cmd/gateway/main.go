package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/hclbank/netbank/internal/config"
	"github.com/hclbank/netbank/internal/infra"
	"github.com/hclbank/netbank/internal/logging"
	"github.com/hclbank/netbank/internal/server"
	"github.com/hclbank/netbank/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	var cache *redis.Client
	var sessions session.Store

	if cfg.RedisURL != "" {
		cache, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}()

		store := session.NewRedisStore(cache, cfg.SessionTTL)
		store.OnChange(sessionAudit(logger))
		sessions = store
	} else {
		logger.Warn("REDIS_URL not set, sessions are in-memory and die with the process")
		store := session.NewMemoryStore()
		store.OnChange(sessionAudit(logger))
		sessions = store
	}

	srv, err := server.New(cfg, cache, sessions, logger)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}

// sessionAudit logs session lifecycle transitions without ever touching the
// credential itself.
func sessionAudit(logger *slog.Logger) session.ChangeFunc {
	return func(sessionID string, p *session.Principal) {
		if p == nil {
			logger.Info("session cleared", slog.String("session_id", sessionID))
			return
		}
		logger.Info("session updated",
			slog.String("session_id", sessionID),
			slog.String("role", string(p.Role)),
			slog.Bool("kyc_completed", p.KYCCompleted),
		)
	}
}
