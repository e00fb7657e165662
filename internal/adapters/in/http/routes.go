package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations described in openapi.yaml.
type ServerInterface interface {
	// GET /customer/Services
	ListServices(ctx echo.Context) error
	// GET /customer/Services/{id}
	GetService(ctx echo.Context, id openapi_types.UUID) error
	// POST /customer/PlaceOrder
	PlaceOrder(ctx echo.Context) error
	// GET /customer/Orders
	ListOrders(ctx echo.Context) error
	// GET /customer/Orders/{id}
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// PUT /customer/Orders/{id}
	EditOrder(ctx echo.Context, id openapi_types.UUID) error
	// GET /customer/Orders/{id}/Status
	GetOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// POST /customer/Orders/{id}/Cancel
	CancelOrder(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListServices(ctx echo.Context) error {
	return w.Handler.ListServices(ctx)
}

func (w *ServerInterfaceWrapper) GetService(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetService(ctx, id)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/customer/Services", wrapper.ListServices)
	router.GET(baseURL+"/customer/Services/:id", wrapper.GetService)
	router.POST(baseURL+"/customer/PlaceOrder", wrapper.PlaceOrder)
	router.GET(baseURL+"/customer/Orders", wrapper.ListOrders)
	router.GET(baseURL+"/customer/Orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/customer/Orders/:id", wrapper.EditOrder)
	router.GET(baseURL+"/customer/Orders/:id/Status", wrapper.GetOrderStatus)
	router.POST(baseURL+"/customer/Orders/:id/Cancel", wrapper.CancelOrder)
}
