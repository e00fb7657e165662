package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/jobs"
	"laundry/internal/telemetry"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "laundry",
		Short:         "Laundry order-management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newLogger(config Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(config.LogLevel)}))
}

func newServeCmd() *cobra.Command {
	var migrateOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(config)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, config, migrateOnStart, logger)
		},
	}
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, config Config, migrateOnStart bool, logger *slog.Logger) error {
	if migrateOnStart {
		if err := runMigration(config, logger, (*postgres.Migrator).Up); err != nil {
			return err
		}
	}

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, config.OTLPEndpoint, config.ServiceName, version)
	if err != nil {
		return err
	}
	defer shutdownWith(logger, "tracer provider", shutdownTracer)

	metrics, err := telemetry.InitMeterProvider(config.ServiceName, version)
	if err != nil {
		return err
	}
	defer shutdownWith(logger, "meter provider", metrics.Shutdown())

	gormDB, err := telemetry.OpenGorm(config.DSN(), &gorm.Config{})
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	jobManager := jobs.NewJobManager(sqlDB, config.HealthSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	root := NewCompositionRoot(config, gormDB)
	e, err := NewWebServer(&root, jobManager.Health(), metrics, logger)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting laundry service", "address", config.ListenAddress())
		serverErr <- e.Start(config.ListenAddress())
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func shutdownWith(logger *slog.Logger, name string, shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "component", name, "error", err)
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(*cobra.Command, []string) error {
			return withConfig(func(config Config, logger *slog.Logger) error {
				return runMigration(config, logger, (*postgres.Migrator).Up)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(*cobra.Command, []string) error {
			return withConfig(func(config Config, logger *slog.Logger) error {
				return runMigration(config, logger, (*postgres.Migrator).Down)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConfig(func(config Config, logger *slog.Logger) error {
				return runMigration(config, logger, func(m *postgres.Migrator) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
					return nil
				})
			})
		},
	})

	return cmd
}

func withConfig(run func(Config, *slog.Logger) error) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	return run(config, newLogger(config))
}

func runMigration(config Config, logger *slog.Logger, step func(*postgres.Migrator) error) error {
	m, err := postgres.NewMigrator(config.DSN(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return step(m)
}
