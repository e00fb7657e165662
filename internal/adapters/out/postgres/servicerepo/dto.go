package servicerepo

import (
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"not null"`
	MaterialType string          `gorm:"not null;default:''"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

// FromDomain is exported so tests can seed the read-only catalog.
func FromDomain(service *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:           service.ID().Bytes(),
		Name:         service.Name(),
		MaterialType: service.MaterialType(),
		Price:        service.Price(),
	}
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(id, dto.Name, dto.MaterialType, dto.Price)
}
