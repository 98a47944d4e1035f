package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/woophysics/lessons/internal/api/http"
	"github.com/woophysics/lessons/internal/config"
	"github.com/woophysics/lessons/internal/lesson"
	"github.com/woophysics/lessons/internal/logging"
	"github.com/woophysics/lessons/internal/metrics"
	"github.com/woophysics/lessons/internal/ratelimit"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	catalog := lesson.Default()
	if err := catalog.Validate(); err != nil {
		logger.Fatal("invalid lesson catalog", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx, 10*time.Minute)

	handler, err := api.NewRouter(api.Deps{
		Config:  cfg,
		Log:     logger,
		Catalog: catalog,
		Metrics: metrics.New(),
		Limiter: limiter,
	})
	if err != nil {
		logger.Fatal("router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.HTTPAddr), zap.Error(err))
	}
	logger.Info("listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("mode", string(cfg.Mode)),
		zap.String("assets", cfg.AssetsDir),
	)
	if err := serve(ctx, server, ln, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		os.Exit(1)
	}
}

// serve runs server on ln until ctx is done, then drains in-flight
// requests for up to timeout before returning.
func serve(ctx context.Context, server *http.Server, ln net.Listener, timeout time.Duration, logger *zap.Logger) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("shutting down server")
		done <- server.Shutdown(sctx)
	}()

	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-done; err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	return nil
}
