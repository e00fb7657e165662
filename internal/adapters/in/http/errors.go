package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "An unexpected error occurred."

// toHTTPError is the single translation from error classes to status codes
// and client-facing messages. Unclassified errors never leak their text.
func toHTTPError(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, unauthenticatedMessage(err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest, invalidStateMessage(err)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, flatten(err.Error())
	case errors.As(err, &httpErr):
		return httpErr.Code, flatten(fmt.Sprint(httpErr.Message))
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func notFoundMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return flatten(err.Error())
	}

	switch notFound.ParamName {
	case "serviceId":
		return fmt.Sprintf("Service with ID %v not found.", notFound.ID)
	case "orderId":
		return fmt.Sprintf("Order with ID %v not found for this customer.", notFound.ID)
	case queries.ServicesParamName:
		return "No services available."
	case queries.OrdersParamName:
		return "No orders found for this customer."
	default:
		return flatten(err.Error())
	}
}

func invalidStateMessage(err error) string {
	var invalidState *errs.InvalidStateError
	if !errors.As(err, &invalidState) {
		return flatten(err.Error())
	}

	switch invalidState.Operation {
	case "cancel":
		return "This order cannot be cancelled because it is already completed or cancelled."
	case "edit":
		return "This order cannot be edited because it is either completed or cancelled."
	default:
		return flatten(err.Error())
	}
}

func unauthenticatedMessage(err error) string {
	var unauthenticated *errs.UnauthenticatedError
	if errors.As(err, &unauthenticated) && unauthenticated.Reason != "" {
		return unauthenticated.Reason
	}
	return "Customer ID not found in the request header."
}

// flatten joins the lines produced by errors.Join into one message.
func flatten(msg string) string {
	return strings.ReplaceAll(msg, "\n", "; ")
}

// NewHTTPErrorHandler renders every error that reaches echo as an Error body.
// 5xx causes are logged, never returned.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := toHTTPError(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
