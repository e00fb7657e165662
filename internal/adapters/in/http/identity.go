package http

import (
	"net/http"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// DefaultIdentityHeader carries the pre-authenticated customer id.
const DefaultIdentityHeader = "CustomerId"

// IdentityResolver extracts the calling customer from a request. Failures
// must wrap errs.ErrUnauthenticated.
type IdentityResolver interface {
	ResolveCustomerID(r *http.Request) (kernel.UUID, error)
}

// HeaderIdentityResolver trusts a single request header. The value is not
// checked against any credential store; put it behind a gateway that sets
// the header.
type HeaderIdentityResolver struct {
	header string
}

func NewHeaderIdentityResolver(header string) HeaderIdentityResolver {
	if strings.TrimSpace(header) == "" {
		header = DefaultIdentityHeader
	}
	return HeaderIdentityResolver{header: header}
}

func (r HeaderIdentityResolver) ResolveCustomerID(req *http.Request) (kernel.UUID, error) {
	raw := strings.TrimSpace(req.Header.Get(r.header))
	if raw == "" {
		return kernel.UUID{}, errs.NewUnauthenticatedError("Customer ID not found in the request header.")
	}

	id, err := kernel.UUIDFromCanonicalString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedErrorWithCause("Customer ID in the request header is not a valid identifier.", err)
	}

	return id, nil
}
