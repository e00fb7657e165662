// Package http is the customer-facing echo surface: identity resolution,
// request validation, handler dispatch and error rendering.
package http

import (
	"context"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const cancelledMessage = "Order successfully cancelled."

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	EditOrderHandler interface {
		Handle(ctx context.Context, cmd commands.EditOrderCommand) (*order.Order, error)
	}
	GetServicesHandler interface {
		Handle(ctx context.Context, query queries.GetServicesQuery) ([]*catalog.Service, error)
	}
	GetServiceHandler interface {
		Handle(ctx context.Context, query queries.GetServiceQuery) (*catalog.Service, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	GetOrderStatusHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderStatusQueryResponse, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderSummary, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	PlaceOrder         PlaceOrderHandler
	CancelOrder        CancelOrderHandler
	EditOrder          EditOrderHandler
	GetServices        GetServicesHandler
	GetService         GetServiceHandler
	GetOrder           GetOrderHandler
	GetOrderStatus     GetOrderStatusHandler
	ListCustomerOrders ListCustomerOrdersHandler
}

// Server implements ServerInterface. Customer-scoped operations resolve the
// caller before anything else, so an anonymous request never reaches the
// store.
type Server struct {
	handlers Handlers
	identity IdentityResolver
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, identity IdentityResolver) *Server {
	return &Server{
		handlers: handlers,
		identity: identity,
	}
}

// ListServices handles GET /customer/Services.
func (s *Server) ListServices(ctx echo.Context) error {
	services, err := s.handlers.GetServices.Handle(ctx.Request().Context(), queries.NewGetServicesQuery())
	if err != nil {
		return err
	}

	response := make([]Service, len(services))
	for i, service := range services {
		response[i] = fromService(service)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetService handles GET /customer/Services/{id}.
func (s *Server) GetService(ctx echo.Context, id openapi_types.UUID) error {
	query, err := queries.NewGetServiceQuery(toKernelUUID(id))
	if err != nil {
		return err
	}

	service, err := s.handlers.GetService.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromService(service))
}

// PlaceOrder handles POST /customer/PlaceOrder.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := s.identity.ResolveCustomerID(ctx.Request())
	if err != nil {
		return err
	}

	var request PlaceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID,
		toKernelUUID(request.ServiceId),
		request.Quantity,
		request.ExpectedDeliveryDate,
		request.AdditionalDescription,
	)
	if err != nil {
		return err
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/customer/Orders/"+placed.ID().String())
	return ctx.JSON(http.StatusCreated, fromOrder(placed))
}

// ListOrders handles GET /customer/Orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	customerID, err := s.identity.ResolveCustomerID(ctx.Request())
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return err
	}

	summaries, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = fromSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /customer/Orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	query, err := s.orderQuery(ctx, id)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// GetOrderStatus handles GET /customer/Orders/{id}/Status.
func (s *Server) GetOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	query, err := s.orderQuery(ctx, id)
	if err != nil {
		return err
	}

	status, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OrderStatus{
		OrderId: status.OrderID.Bytes(),
		Status:  status.Status,
	})
}

// CancelOrder handles POST /customer/Orders/{id}/Cancel.
func (s *Server) CancelOrder(ctx echo.Context, id openapi_types.UUID) error {
	customerID, err := s.identity.ResolveCustomerID(ctx.Request())
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(customerID, toKernelUUID(id))
	if err != nil {
		return err
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Message{Message: cancelledMessage})
}

// EditOrder handles PUT /customer/Orders/{id}.
func (s *Server) EditOrder(ctx echo.Context, id openapi_types.UUID) error {
	customerID, err := s.identity.ResolveCustomerID(ctx.Request())
	if err != nil {
		return err
	}

	var request EditOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(customerID, toKernelUUID(id), request.toPatch())
	if err != nil {
		return err
	}

	edited, err := s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromOrder(edited))
}

func (s *Server) orderQuery(ctx echo.Context, id openapi_types.UUID) (queries.GetOrderQuery, error) {
	customerID, err := s.identity.ResolveCustomerID(ctx.Request())
	if err != nil {
		return queries.GetOrderQuery{}, err
	}

	return queries.NewGetOrderQuery(customerID, toKernelUUID(id))
}
