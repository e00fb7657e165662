package queries

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

type GetServiceQueryHandler struct {
	services ports.ServiceRepository
}

func NewGetServiceQueryHandler(services ports.ServiceRepository) GetServiceQueryHandler {
	return GetServiceQueryHandler{services: services}
}

func (h GetServiceQueryHandler) Handle(ctx context.Context, query GetServiceQuery) (*catalog.Service, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	service, err := h.services.Find(ctx, query.ServiceID())
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errs.NewObjectNotFoundError("serviceId", query.ServiceID().String())
	}

	return service, nil
}
