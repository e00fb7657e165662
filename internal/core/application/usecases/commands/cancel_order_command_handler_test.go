package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		2,
		fixedNow.Add(72*time.Hour),
		"shirts",
		status,
		fixedNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.InProgress} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			customerID := kernel.NewUUID()
			current := restoreTestOrder(t, customerID, status)
			cmd, err := commands.NewCancelOrderCommand(customerID, current.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("GetForCustomer", ctx, customerID, current.ID()).Return(current, nil).Once(),
				repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
					return o.IsEqual(current) && o.Status() == order.Cancelled
				})).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCancelOrderCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))

			assert.Equal(t, status, current.Status(), "loaded value must not be mutated")
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
			factory.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_TerminalStatus(t *testing.T) {
	for _, status := range []order.Status{order.Completed, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			customerID := kernel.NewUUID()
			current := restoreTestOrder(t, customerID, status)
			cmd, _ := commands.NewCancelOrderCommand(customerID, current.ID())

			repo := new(MockOrderRepository)
			repo.On("GetForCustomer", ctx, customerID, current.ID()).Return(current, nil).Once()
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCancelOrderCommandHandler(factory)
			err := h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrInvalidState)

			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(customerID, orderID)

	repo := new(MockOrderRepository)
	repo.On("GetForCustomer", ctx, customerID, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CancelOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	current := restoreTestOrder(t, customerID, order.Pending)
	cmd, _ := commands.NewCancelOrderCommand(customerID, current.ID())

	repo := new(MockOrderRepository)
	repo.On("GetForCustomer", ctx, customerID, current.ID()).Return(current, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.EqualError(t, h.Handle(ctx, cmd), "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
