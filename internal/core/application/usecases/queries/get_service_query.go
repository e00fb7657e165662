package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetServiceQueryIsNotConstructed = errors.New(
		"GetServiceQuery must be created via NewGetServiceQuery constructor",
	)
	ErrServiceIDIsRequired = errs.NewValueIsRequiredError("serviceId")
)

// GetServiceQuery looks up one catalog entry.
type GetServiceQuery struct {
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetServiceQuery(serviceID kernel.UUID) (GetServiceQuery, error) {
	if serviceID.Validate() != nil {
		return GetServiceQuery{}, ErrServiceIDIsRequired
	}

	return GetServiceQuery{
		serviceID: serviceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetServiceQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceQueryIsNotConstructed)
}

func (q GetServiceQuery) ServiceID() kernel.UUID {
	return q.serviceID
}
