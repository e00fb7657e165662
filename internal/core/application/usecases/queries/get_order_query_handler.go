package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// GetOrderQueryHandler returns the full order. An order owned by someone
// else is indistinguishable from a missing one.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetForCustomer(ctx, query.CustomerID(), query.OrderID())
}

// GetOrderStatusQueryResponse is the projection returned by the status lookup.
type GetOrderStatusQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
}

type GetOrderStatusQueryHandler struct {
	orders OrderReader
}

func NewGetOrderStatusQueryHandler(orders OrderReader) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	o, err := h.orders.GetForCustomer(ctx, query.CustomerID(), query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		OrderID: o.ID(),
		Status:  o.Status(),
	}, nil
}
