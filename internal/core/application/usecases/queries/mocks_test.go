package queries_test

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) GetAll(ctx context.Context) ([]*catalog.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]*catalog.Service)
	return services, args.Error(1)
}

func (m *MockServiceRepository) Find(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	service, _ := args.Get(0).(*catalog.Service)
	return service, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetForCustomer(
	ctx context.Context,
	customerID, orderID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, customerID, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
