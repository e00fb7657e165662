package queries_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), 1, now.Add(time.Hour), "", status, now)
	require.NoError(t, err)
	return o
}

func TestNewGetOrderQuery(t *testing.T) {
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	q, err := queries.NewGetOrderQuery(customerID, orderID)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, customerID, q.CustomerID())
	assert.Equal(t, orderID, q.OrderID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{}, kernel.UUID{})
	require.ErrorIs(t, err, queries.ErrCustomerIDIsRequired)
	require.ErrorIs(t, err, queries.ErrOrderIDIsRequired)

	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle_Owned(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := newStoredOrder(t, customerID, order.Pending)

	reader := new(MockOrderReader)
	reader.On("GetForCustomer", ctx, customerID, stored.ID()).Return(stored, nil).Once()

	q, _ := queries.NewGetOrderQuery(customerID, stored.ID())
	result, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)
	assert.Same(t, stored, result)
	reader.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	reader := new(MockOrderReader)
	reader.On("GetForCustomer", ctx, customerID, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()

	q, _ := queries.NewGetOrderQuery(customerID, orderID)
	_, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := newStoredOrder(t, customerID, order.Cancelled)

	reader := new(MockOrderReader)
	reader.On("GetForCustomer", ctx, customerID, stored.ID()).Return(stored, nil).Once()

	q, _ := queries.NewGetOrderQuery(customerID, stored.ID())
	result, err := queries.NewGetOrderStatusQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, stored.ID(), result.OrderID)
	assert.Equal(t, order.Cancelled, result.Status)
}

func TestGetOrderStatusQueryHandler_Handle_NotConstructed(t *testing.T) {
	reader := new(MockOrderReader)
	_, err := queries.NewGetOrderStatusQueryHandler(reader).Handle(t.Context(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	reader.AssertNotCalled(t, "GetForCustomer")
}
