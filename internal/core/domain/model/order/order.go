package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the laundry order lifecycle.
//
// Order follows these invariants:
//   - id, customer and service identifiers are valid and never change
//   - quantity is positive
//   - the expected delivery date was strictly in the future when the order
//     was placed
//   - status transitions follow Status
//   - the creation timestamp is set once, in UTC
//
// Order values are never mutated after construction. Cancel and Edit return a
// new *Order, so a value loaded from the store stays exactly what was read
// until the replacement is written back.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	serviceID  kernel.UUID

	quantity              int
	expectedDeliveryDate  time.Time
	additionalDescription string

	status      Status
	dateCreated time.Time

	isConstructed bool
}

// NewOrder places a new order for customerID. now is the placement instant;
// the expected delivery date must be strictly after it.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, serviceID, 3,
//	    time.Now().Add(7*24*time.Hour), "no starch", time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, customerID, serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	additionalDescription string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:                Pending,
		additionalDescription: additionalDescription,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setQuantity(quantity),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
		o.setDateCreated(now),
	); err != nil {
		return nil, err
	}
	if err := validateInFuture(o.expectedDeliveryDate, o.dateCreated); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from persistence. It checks structural
// invariants only: a stored delivery date may lie in the past by now.
func RestoreOrder(
	id, customerID, serviceID kernel.UUID,
	quantity int,
	expectedDeliveryDate time.Time,
	additionalDescription string,
	status Status,
	dateCreated time.Time,
) (*Order, error) {
	o := &Order{
		additionalDescription: additionalDescription,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setQuantity(quantity),
		o.setExpectedDeliveryDate(expectedDeliveryDate),
		o.setStatus(status),
		o.setDateCreated(dateCreated),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) ExpectedDeliveryDate() time.Time {
	return o.expectedDeliveryDate
}

func (o *Order) AdditionalDescription() string {
	return o.additionalDescription
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DateCreated() time.Time {
	return o.dateCreated
}

// Cancel returns a copy of the order in Cancelled status.
// Orders in a terminal status fail with errs.ErrInvalidState.
func (o *Order) Cancel() (*Order, error) {
	next, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	cancelled := *o
	cancelled.status = next
	return &cancelled, nil
}

// Edit returns a copy of the order with the fields present in p replaced.
// Owner, service, status and creation time are never touched. Orders in a
// terminal status fail with errs.ErrInvalidState.
func (o *Order) Edit(p Patch) (*Order, error) {
	if err := o.status.ValidateMutable("edit"); err != nil {
		return nil, err
	}

	edited := *o

	var quantityErr, dateErr error
	if quantity, ok := p.Quantity.Get(); ok {
		quantityErr = edited.setQuantity(quantity)
	}
	if date, ok := p.ExpectedDeliveryDate.Get(); ok {
		dateErr = edited.setExpectedDeliveryDate(date)
	}
	if err := errors.Join(quantityErr, dateErr); err != nil {
		return nil, err
	}

	if description, ok := p.AdditionalDescription.Get(); ok {
		edited.additionalDescription = description
	}

	return &edited, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceId", err)
	}
	o.serviceID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	o.expectedDeliveryDate = storedTime(date)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDateCreated(dateCreated time.Time) error {
	if dateCreated.IsZero() {
		return errs.NewValueIsRequiredError("dateCreated")
	}
	o.dateCreated = storedTime(dateCreated)
	return nil
}

// storedTime normalizes t to what a timestamptz column keeps: UTC at
// microsecond resolution.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func validateInFuture(date, now time.Time) error {
	if date.IsZero() || date.After(now) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"expectedDeliveryDate is invalid",
		fmt.Errorf("%s is not after %s", date.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339)),
	)
}
