package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerIDIsRequired           = errs.NewValueIsRequiredError("customerId")
	ErrServiceIDIsRequired            = errs.NewValueIsRequiredError("serviceId")
	ErrQuantityIsInvalid              = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0"))
	ErrExpectedDeliveryDateIsRequired = errs.NewValueIsRequiredError("expectedDeliveryDate")
)

// PlaceOrderCommand is a customer's request for a catalog service.
// The customer id always comes from the resolved caller identity; an id sent
// in the request payload is never used.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, serviceID, 3, deliveryDate, "no starch")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID            kernel.UUID
	serviceID             kernel.UUID
	quantity              int
	expectedDeliveryDate  time.Time
	additionalDescription string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the structural fields of a placement.
// Whether the delivery date lies in the future is checked by the handler
// against its clock.
func NewPlaceOrderCommand(
	customerID, serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	additionalDescription string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		additionalDescription: additionalDescription,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setServiceID(serviceID),
		cmd.setQuantity(quantity),
		cmd.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c PlaceOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

func (c PlaceOrderCommand) AdditionalDescription() string {
	return c.additionalDescription
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if customerID.Validate() != nil {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if serviceID.Validate() != nil {
		return ErrServiceIDIsRequired
	}

	c.serviceID = serviceID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return ErrExpectedDeliveryDateIsRequired
	}

	c.expectedDeliveryDate = date
	return nil
}
