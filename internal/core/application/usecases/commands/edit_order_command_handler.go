package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// EditOrderCommandHandler applies sparse patches to non-terminal orders.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order as stored after the edit.
//
// Failures:
//   - errs.ErrObjectNotFound when the caller has no such order
//   - errs.ErrInvalidState when the order is Completed or Cancelled
//   - errs.ErrValueIsInvalid / errs.ErrValueIsRequired for present but
//     unacceptable patch values
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.GetForCustomer(ctx, cmd.CustomerID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	edited, err := current.Edit(cmd.Patch())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, edited); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return edited, nil
}
