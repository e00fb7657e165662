package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// ServiceRepository is the read-only view of the service catalog.
type ServiceRepository interface {
	// GetAll returns every offered service. No services is an empty slice,
	// not an error.
	GetAll(ctx context.Context) ([]*catalog.Service, error)

	// Find looks a service up by id. A missing service yields (nil, nil).
	Find(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
}
