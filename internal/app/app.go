// Package app wires configuration, storage, services and transports
// together and runs the HTTP server until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99designs/gqlgen/graphql/playground"
	"golang.org/x/sync/errgroup"

	"github.com/feedbackhub/backend/internal/adapter/postgres"
	eventrepo "github.com/feedbackhub/backend/internal/adapter/postgres/event"
	feedbackrepo "github.com/feedbackhub/backend/internal/adapter/postgres/feedback"
	userrepo "github.com/feedbackhub/backend/internal/adapter/postgres/user"
	"github.com/feedbackhub/backend/internal/config"
	"github.com/feedbackhub/backend/internal/pubsub"
	eventsvc "github.com/feedbackhub/backend/internal/service/event"
	feedbacksvc "github.com/feedbackhub/backend/internal/service/feedback"
	streamsvc "github.com/feedbackhub/backend/internal/service/stream"
	usersvc "github.com/feedbackhub/backend/internal/service/user"
	"github.com/feedbackhub/backend/internal/transport/graphql"
	"github.com/feedbackhub/backend/internal/transport/graphql/dataloader"
	"github.com/feedbackhub/backend/internal/transport/graphql/resolver"
	"github.com/feedbackhub/backend/internal/transport/middleware"
	"github.com/feedbackhub/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and the GraphQL transport, and serves HTTP
// until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	hub := pubsub.NewHub(logger)

	users := userrepo.New(pool)
	events := eventrepo.New(pool)
	feedbacks := feedbackrepo.New(pool)

	userService := usersvc.NewService(logger, users)
	eventService := eventsvc.NewService(logger, events)
	feedbackService := feedbacksvc.NewService(logger, feedbacks, hub)
	streamService := streamsvc.NewService(logger, cfg.Stream, events, users, feedbacks, hub)

	res := resolver.NewResolver(logger, userService, eventService, feedbackService, streamService, hub)
	gqlServer := graphql.NewServer(logger, cfg.GraphQL, res)

	health := rest.NewHealthHandler(pool, streamService, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle("/graphql", gqlServer)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("/", playground.Handler("GraphQL Playground", "/graphql"))
	}
	mux.HandleFunc("/health", health.Health)
	mux.HandleFunc("/ready", health.Ready)
	mux.HandleFunc("/live", health.Live)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		dataloader.Middleware(&dataloader.Repos{Feedback: feedbacks}),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		streamService.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}
