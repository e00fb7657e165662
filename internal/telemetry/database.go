package telemetry

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB opens a traced database/sql handle.
func OpenDB(driverName, dsn string) (*sql.DB, error) {
	return otelsql.Open(driverName, dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
}

// OpenGorm layers gorm over a traced lib/pq connection pool.
func OpenGorm(dsn string, config *gorm.Config) (*gorm.DB, error) {
	sqlDB, err := OpenDB("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), config)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return db, nil
}
