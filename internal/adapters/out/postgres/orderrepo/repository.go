package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// mutableColumns are the only columns Update writes. Owner, service and
// creation time are fixed once the row exists.
var mutableColumns = []string{
	"quantity",
	"expected_delivery_date",
	"additional_description",
	"status",
}

type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository over db, which is either the
// pool or a transaction handed out by the unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND customer_id = ?", dto.ID, dto.CustomerID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderId", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

// GetForCustomer reads an order only if customerID owns it. A foreign order
// and a missing one both yield errs.ErrObjectNotFound.
func (r *GormOrderRepository) GetForCustomer(
	ctx context.Context,
	customerID, orderID kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND customer_id = ?", orderID.Bytes(), customerID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
