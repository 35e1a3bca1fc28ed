package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"mergington/internal/activities/handler"
	"mergington/internal/activities/service"
	"mergington/internal/activities/store"
	"mergington/internal/activities/tracer"
	"mergington/internal/platform/config"
	"mergington/internal/platform/health"
	"mergington/internal/platform/logger"
	"mergington/internal/platform/metrics"
	"mergington/internal/seeder"
	httptransport "mergington/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing activities service",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	registry := store.NewInMemory()
	if err := seeder.New(registry, log).Seed(context.Background()); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	svc := service.New(registry, log,
		service.WithMetrics(m),
		service.WithTracer(tracer.NewOTel()),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("registry", func() error {
		if registry.Count(context.Background()) == 0 {
			return errors.New("activity registry is empty")
		}
		return nil
	})

	router := httptransport.NewRouter(
		handler.New(svc, log),
		healthHandler,
		cfg.StaticDir,
		log,
		m,
		cfg.RequestTimeout,
	)

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
