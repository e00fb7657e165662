package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID             uuid.UUID `gorm:"type:uuid;not null"`
	Quantity              int       `gorm:"not null"`
	ExpectedDeliveryDate  time.Time `gorm:"type:timestamptz;not null"`
	AdditionalDescription string    `gorm:"not null;default:''"`
	Status                int       `gorm:"type:smallint;not null"`
	DateCreated           time.Time `gorm:"type:timestamptz;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		ServiceID:             o.ServiceID().Bytes(),
		Quantity:              o.Quantity(),
		ExpectedDeliveryDate:  o.ExpectedDeliveryDate().UTC(),
		AdditionalDescription: o.AdditionalDescription(),
		Status:                int(o.Status()),
		DateCreated:           o.DateCreated().UTC(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		serviceID,
		dto.Quantity,
		dto.ExpectedDeliveryDate.UTC(),
		dto.AdditionalDescription,
		order.Status(dto.Status),
		dto.DateCreated.UTC(),
	)
}
