package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diary/internal/account"
	"diary/internal/config"
	"diary/internal/diary"
	httpx "diary/internal/http"
	"diary/internal/logger"
	"diary/internal/oauth"

	"go.uber.org/zap"
)

// Run serves until ctx is cancelled or the listener fails.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if !cfg.Google.Complete() {
		log.Warn("google oauth not configured; /auth/google will answer 500")
	}

	// stores live as long as the process
	r := httpx.NewRouter(cfg, httpx.Deps{
		Accounts: account.NewStore(),
		Diaries:  diary.NewStore(),
		Google:   oauth.NewGoogle(cfg.Google),
		Log:      log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		return err
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
