package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderId")
)

// CancelOrderCommand asks to move one of the caller's orders to Cancelled.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(customerID, orderID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if customerID.Validate() != nil {
		return ErrCustomerIDIsRequired
	}
	c.customerID = customerID
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if orderID.Validate() != nil {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}
