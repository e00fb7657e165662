package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels non-terminal orders of the caller.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads the order through the ownership filter, derives the cancelled
// value and writes it back.
//
// Failures:
//   - errs.ErrObjectNotFound when the caller has no such order
//   - errs.ErrInvalidState when the order is Completed or Cancelled
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.GetForCustomer(ctx, cmd.CustomerID(), cmd.OrderID())
	if err != nil {
		return err
	}

	cancelled, err := current.Cancel()
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
