package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerId")
	ErrOrderIDIsRequired    = errs.NewValueIsRequiredError("orderId")
)

// OrderReader is the ownership-filtered read side of the order store.
type OrderReader interface {
	GetForCustomer(ctx context.Context, customerID, orderID kernel.UUID) (*order.Order, error)
}

// GetOrderQuery reads one of the caller's orders. It also backs the status
// lookup, which only differs in the response it builds.
type GetOrderQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(customerID, orderID kernel.UUID) (GetOrderQuery, error) {
	var customerErr, orderErr error
	if customerID.Validate() != nil {
		customerErr = ErrCustomerIDIsRequired
	}
	if orderID.Validate() != nil {
		orderErr = ErrOrderIDIsRequired
	}
	if err := errors.Join(customerErr, orderErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
