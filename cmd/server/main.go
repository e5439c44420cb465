package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/quick4lio/internal/api"
	"github.com/rohits-web03/quick4lio/internal/api/handlers"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/config"
	"github.com/rohits-web03/quick4lio/internal/logger"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
)

func main() {
	cfg := config.Envs

	zlog, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Could not create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, zlog *zap.Logger) error {
	// Connect to database
	db, err := repositories.ConnectDatabase(cfg.DB_URL, zlog)
	if err != nil {
		return err
	}

	users := repositories.NewUserRepository(db)
	portfolios := repositories.NewPortfolioRepository(db)
	posts := repositories.NewPostRepository(db)

	h := &handlers.Handler{
		Accounts:   services.NewAccountService(users, zlog),
		Portfolios: services.NewPortfolioService(portfolios, users, portfolio.NewBuilder(cfg.PortfolioStrict), zlog),
		Posts:      posts,
		OAuth:      services.NewGoogleOauthConfig(cfg.Google),
		Config:     cfg,
		Log:        zlog,
	}

	media, err := repositories.NewMediaStore(repositories.R2Options(cfg.R2))
	if err != nil {
		zlog.Warn("media uploads disabled", zap.Error(err))
	} else {
		h.Media = media
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, cfg, zlog),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("starting Quick4lio server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		zlog.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
