package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"pomocua-ads/config"
	_ "pomocua-ads/docs"
	"pomocua-ads/internal/adapters/auth"
	"pomocua-ads/internal/adapters/clock"
	deliveryhttp "pomocua-ads/internal/delivery/http"
	"pomocua-ads/internal/delivery/http/controllers"
	"pomocua-ads/internal/delivery/http/middleware"
	"pomocua-ads/internal/domain"
	"pomocua-ads/internal/repository/memory"
	"pomocua-ads/internal/repository/postgres"
	"pomocua-ads/internal/services"
)

// @title Pomoc UA offers API
// @version 1.0
// @description Accommodation and transport offers for people fleeing the war in Ukraine.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

type repositories struct {
	accommodations domain.OfferRepository[*domain.AccommodationOffer]
	transport      domain.OfferRepository[*domain.TransportOffer]
	close          func() error
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("using in-memory store, offers are lost on restart")
		return &repositories{
			accommodations: memory.NewAccommodationStore(cfg.CollationLocale),
			transport:      memory.NewTransportStore(cfg.CollationLocale),
			close:          func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &repositories{
		accommodations: postgres.NewAccommodationRepository(db, cfg.PGCollation),
		transport:      postgres.NewTransportRepository(db, cfg.PGCollation),
		close:          db.Close,
	}, nil
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()

	users := middleware.ContextUserProvider{}
	clk := clock.NewSystem()
	resolver := domain.NewPageResolver(cfg.DefaultPageSize, cfg.MaxPageSize)

	accommodations := services.NewAccommodationCatalog(repos.accommodations, users, clk, logger, cfg.RequestTimeout)
	transport := services.NewTransportCatalog(repos.transport, users, clk, logger, cfg.RequestTimeout)

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		Verifier:       auth.NewJWT(cfg.JWTSecret, cfg.JWTIssuer),
		Accommodations: controllers.NewAccommodationController(logger, accommodations, resolver),
		Transport:      controllers.NewTransportController(logger, transport, resolver),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
