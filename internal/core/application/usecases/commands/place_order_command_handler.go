package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// PlaceOrderCommandHandler creates orders in Pending status.
//
// The order value is built and validated before the store is touched; the
// catalog lookup and the insert then share one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewPlaceOrderCommandHandler creates the handler. A nil clock means SystemClock.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, clock Clock) PlaceOrderCommandHandler {
	if clock == nil {
		clock = SystemClock
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order and returns it as persisted.
//
// Failures:
//   - errs.ErrValueIsRequired / errs.ErrValueIsInvalid for bad input,
//     including a delivery date that is not after now
//   - errs.ErrObjectNotFound when the service does not exist
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.ServiceID(),
		cmd.Quantity(),
		cmd.ExpectedDeliveryDate(),
		cmd.AdditionalDescription(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	service, err := uow.ServiceRepository().Find(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errs.NewObjectNotFoundError("serviceId", cmd.ServiceID().String())
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
