package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormServiceRepository reads the catalog. The catalog is maintained
// elsewhere, so there is no write path.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) GetAll(ctx context.Context) ([]*catalog.Service, error) {
	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	services := make([]*catalog.Service, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return services, nil
}

// Find returns nil, nil when no service has the given id.
func (r *GormServiceRepository) Find(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absence is a valid outcome
		}
		return nil, err
	}

	return toDomain(dto)
}
