// Package commands contains the operations that change order state.
// Every command follows the same pattern: constructor validation, a unit of
// work around the repository calls, and an explicit commit.
package commands

import (
	"context"
	"time"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order store within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ServiceRepoFactory provides access to the catalog within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// OrderUoW manages transactions for commands that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that read the catalog and write orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   service, err := uow.ServiceRepository().Find(ctx, serviceID)
	//   err = uow.OrderRepository().Add(ctx, placed)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ServiceRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for catalog+order commands.
	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current instant. Handlers take one so tests can pin time.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
