package queries

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ServicesParamName names the catalog in not-found errors for empty listings.
const ServicesParamName = "services"

type GetServicesQueryHandler struct {
	services ports.ServiceRepository
	policy   EmptyResultPolicy
}

func NewGetServicesQueryHandler(services ports.ServiceRepository, policy EmptyResultPolicy) GetServicesQueryHandler {
	return GetServicesQueryHandler{services: services, policy: policy}
}

// Handle returns every catalog entry. With EmptyAsNotFound an empty catalog
// is reported as errs.ErrObjectNotFound.
func (h GetServicesQueryHandler) Handle(ctx context.Context, query GetServicesQuery) ([]*catalog.Service, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	services, err := h.services.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		if h.policy == EmptyAsNotFound {
			return nil, errs.NewObjectNotFoundError(ServicesParamName, "all")
		}
		return []*catalog.Service{}, nil
	}

	return services, nil
}
