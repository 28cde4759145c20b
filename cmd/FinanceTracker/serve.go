package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/config"
	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/events"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
	"github.com/sebuszqo/FinanceTracker/internal/response"
	"github.com/sebuszqo/FinanceTracker/internal/server"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newPublisher(cfg config.AMQPConfig) (events.Publisher, error) {
	if cfg.URL == "" {
		slog.Info("No message broker configured, transaction events are disabled")
		return events.NopPublisher{}, nil
	}
	return events.NewAMQPPublisher(cfg.URL, cfg.Exchange)
}

func runServe(ctx context.Context) error {
	cfg := config.FromViper(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Database.MigrateOnStart {
		if err := database.RunMigrations(cfg.Database.URL, database.Up); err != nil {
			return err
		}
	}

	dbService, err := database.NewDBService(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	defer dbService.Close()

	publisher, err := newPublisher(cfg.AMQP)
	if err != nil {
		return fmt.Errorf("could not connect to message broker: %w", err)
	}
	defer publisher.Close()

	jwtManager, err := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return err
	}
	responder := response.NewResponder(cfg.IsDevelopment())

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo, jwtManager)
	userHandler := user.NewHandler(userService, responder.JSON, responder.Error)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, responder.JSON, responder.Error)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionTypeRepo := infrastructure.NewTransactionTypeRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, transactionTypeRepo, publisher)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, responder.JSON, responder.Error)

	srv := server.NewServer(userHandler, categoryHandler, transactionHandler, jwtManager, dbService, responder)
	srv.RegisterRoutes()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
