package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery lists every order of one customer together with
// the catalog data of the ordered service.
//
// Example:
//
//	query, err := NewListCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	summaries, err := handler.Handle(ctx, query)
//	for _, s := range summaries {
//	    fmt.Printf("%s %s x%d (%s)\n", s.OrderID, s.ServiceName, s.Quantity, s.Status)
//	}
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if customerID.Validate() != nil {
		return ListCustomerOrdersQuery{}, ErrCustomerIDIsRequired
	}

	return ListCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderSummary joins an order with its service. It is derived on every read
// and never stored.
type OrderSummary struct {
	OrderID               kernel.UUID
	CustomerID            kernel.UUID
	ServiceID             kernel.UUID
	ServiceName           string
	MaterialType          string
	Price                 decimal.Decimal
	Quantity              int
	ExpectedDeliveryDate  time.Time
	AdditionalDescription string
	Status                order.Status
	DateCreated           time.Time
}
