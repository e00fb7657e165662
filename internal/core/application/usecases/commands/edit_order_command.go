package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand carries a sparse update of one of the caller's orders.
// Fields absent from the patch keep their stored value.
//
// Example:
//
//	cmd, _ := NewEditOrderCommand(customerID, orderID, order.Patch{
//	    Quantity: kernel.Some(4),
//	})
//	updated, err := handler.Handle(ctx, cmd)
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	patch      order.Patch

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(customerID, orderID kernel.UUID, patch order.Patch) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	var customerErr, orderErr error
	if customerID.Validate() != nil {
		customerErr = ErrCustomerIDIsRequired
	}
	if orderID.Validate() != nil {
		orderErr = ErrOrderIDIsRequired
	}
	if err := errors.Join(customerErr, orderErr); err != nil {
		return EditOrderCommand{}, err
	}

	cmd.customerID = customerID
	cmd.orderID = orderID
	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderCommand) Patch() order.Patch {
	return c.patch
}
