package http

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// The stock date-time format leaves the zone offset optional; request times
// must carry one.
func init() {
	openapi3.DefineStringFormatValidator("date-time", openapi3.NewCallbackValidator(func(value string) error {
		_, err := time.Parse(time.RFC3339, value)
		return err
	}))
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}

// NewRequestValidator checks requests against doc before they reach a
// handler. Requests for paths the document does not describe pass through.
// Violations surface as errs.ErrValueIsInvalid, which renders as 400.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match on paths only, whatever host the service runs on.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	return newRequestValidator(router), nil
}

func newRequestValidator(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return contractViolation(err)
			}

			return next(c)
		}
	}
}

// contractViolation reduces a kin-openapi failure to the offending field and
// the rule it broke. Schema fragments and rejected values stay server-side.
func contractViolation(err error) error {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return errs.NewValueIsInvalidError("request")
	}

	name := "body"
	if requestErr.Parameter != nil {
		name = requestErr.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(requestErr, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 && requestErr.Parameter == nil {
			name = strings.Join(pointer, ".")
		}
		return errs.NewValueIsInvalidErrorWithCause(name, errors.New(schemaReason(schemaErr)))
	}

	if errors.Is(requestErr, openapi3filter.ErrInvalidRequired) {
		return errs.NewValueIsRequiredError(name)
	}

	if requestErr.Reason != "" {
		return errs.NewValueIsInvalidErrorWithCause(name, errors.New(requestErr.Reason))
	}
	return errs.NewValueIsInvalidError(name)
}

// schemaReason drops the regular expressions and rejected values that
// format and pattern failures embed in their reason.
func schemaReason(schemaErr *openapi3.SchemaError) string {
	switch schemaErr.SchemaField {
	case "format":
		if schemaErr.Schema != nil && schemaErr.Schema.Format == "date-time" {
			return "value must be an RFC 3339 date-time with a zone offset"
		}
		if schemaErr.Schema != nil {
			return fmt.Sprintf("value must match format %q", schemaErr.Schema.Format)
		}
		return "value has an invalid format"
	case "pattern":
		return "value does not match the expected pattern"
	default:
		return schemaErr.Reason
	}
}
