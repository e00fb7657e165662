package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrGetServicesQueryIsNotConstructed = errors.New(
	"GetServicesQuery must be created via NewGetServicesQuery constructor",
)

// GetServicesQuery lists the whole catalog.
type GetServicesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetServicesQuery() GetServicesQuery {
	return GetServicesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetServicesQueryIsNotConstructed)
}
