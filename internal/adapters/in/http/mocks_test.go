package http

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct {
	mock.Mock
}

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCancelOrderHandler struct {
	mock.Mock
}

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockEditOrderHandler struct {
	mock.Mock
}

func (m *MockEditOrderHandler) Handle(ctx context.Context, cmd commands.EditOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockGetServicesHandler struct {
	mock.Mock
}

func (m *MockGetServicesHandler) Handle(ctx context.Context, query queries.GetServicesQuery) ([]*catalog.Service, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Service), args.Error(1)
}

type MockGetServiceHandler struct {
	mock.Mock
}

func (m *MockGetServiceHandler) Handle(ctx context.Context, query queries.GetServiceQuery) (*catalog.Service, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

type MockGetOrderHandler struct {
	mock.Mock
}

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockGetOrderStatusHandler struct {
	mock.Mock
}

func (m *MockGetOrderStatusHandler) Handle(
	ctx context.Context,
	query queries.GetOrderQuery,
) (queries.GetOrderStatusQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatusQueryResponse), args.Error(1)
}

type MockListCustomerOrdersHandler struct {
	mock.Mock
}

func (m *MockListCustomerOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListCustomerOrdersQuery,
) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderSummary), args.Error(1)
}
