package ports

import (
	"context"
)

// UnitOfWork is a business transaction boundary. Client code drives the
// lifecycle explicitly with Begin, Commit and Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if there is no active transaction.
	Rollback(ctx context.Context) error

	// ServiceRepository returns a catalog reader bound to the current transaction.
	ServiceRepository() ServiceRepository

	// OrderRepository returns an order store bound to the current transaction.
	OrderRepository() OrderRepository
}
