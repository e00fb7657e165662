// Package pgtest starts a throwaway Postgres with the production schema for
// integration suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/telemetry"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type Database struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

// Start runs a postgres:15-alpine container and applies all migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err = migrateUp(dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := telemetry.OpenGorm(dsn, &gorm.Config{})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return &Database{Container: container, DSN: dsn, DB: db}, nil
}

func migrateUp(dsn string) error {
	m, err := postgres.NewMigrator(dsn, nil)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return m.Up()
}

// Truncate empties every table, keeping the schema.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE orders, services CASCADE").Error
}

// SeedService inserts a catalog entry, which the application itself never writes.
func (d *Database) SeedService(ctx context.Context, service *catalog.Service) error {
	dto := servicerepo.FromDomain(service)
	return d.DB.WithContext(ctx).Create(&dto).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
