package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read is scoped to the owning customer: an order placed by someone
// else is indistinguishable from one that does not exist.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order: quantity,
	// expected delivery date, description and status.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForCustomer returns the order matching both customerID and orderID,
	// or an *errs.ObjectNotFoundError.
	GetForCustomer(ctx context.Context, customerID, orderID kernel.UUID) (*order.Order, error)
}
