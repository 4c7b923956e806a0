package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/config"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/database"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/events"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/logger"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/scheduler"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/secret"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	zlog.Logger = log

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Str("path", cfg.Database.Path).Msg("Connected to database")

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	cipher, err := secret.NewCipher(cfg.Security.EncryptionKey)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			return err
		}
		publisher = p
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}()

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db, cipher)
	settingsRepo := repository.NewSettingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	services := api.Services{
		System: service.NewSystemService(db, map[string]bool{
			"events":     cfg.AMQP.URL != "",
			"encryption": cipher.Enabled(),
			"snapshots":  cfg.Scheduler.SnapshotSchedule != "",
		}),
		Transaction: service.NewTransactionService(db, transactionRepo, publisher, log),
		Report:      service.NewReportService(transactionRepo, settingsRepo, cfg.Report.DefaultGoal),
		Calendar:    service.NewCalendarService(transactionRepo),
		Snapshot:    service.NewSnapshotService(transactionRepo, snapshotRepo),
	}

	sched := scheduler.New(log)
	if err := sched.Add(scheduler.SnapshotJobName, cfg.Scheduler.SnapshotSchedule, scheduler.SnapshotJob(services.Snapshot, log)); err != nil {
		return err
	}
	sched.Start()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(services, cfg, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sched.Stop(ctx); err != nil {
		log.Warn().Err(err).Msg("Scheduler did not stop in time")
	}

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exited")
	return nil
}
