package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdersParamName names the order list in not-found errors for empty listings.
const OrdersParamName = "orders"

// ListCustomerOrdersQueryHandler reads order summaries with a single joined
// query. Newest orders come first; equal creation times fall back to the
// order id, descending, so the order is stable between calls.
type ListCustomerOrdersQueryHandler struct {
	db     *gorm.DB
	policy EmptyResultPolicy
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB, policy EmptyResultPolicy) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db, policy: policy}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.service_id,
			s.name,
			s.material_type,
			s.price,
			o.quantity,
			o.expected_delivery_date,
			o.additional_description,
			o.status,
			o.date_created
		FROM orders o
		JOIN services s ON s.id = o.service_id
		WHERE o.customer_id = ?
		ORDER BY o.date_created DESC, o.id DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummary
		var orderID, customerID, serviceID uuid.UUID
		var price decimal.Decimal
		var status int

		err = rows.Scan(
			&orderID,
			&customerID,
			&serviceID,
			&summary.ServiceName,
			&summary.MaterialType,
			&price,
			&summary.Quantity,
			&summary.ExpectedDeliveryDate,
			&summary.AdditionalDescription,
			&status,
			&summary.DateCreated,
		)
		if err != nil {
			return nil, err
		}

		if summary.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if summary.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
			return nil, err
		}

		summary.Status = order.Status(status)
		if err = summary.Status.Validate(); err != nil {
			return nil, err
		}

		summary.Price = price
		summary.ExpectedDeliveryDate = summary.ExpectedDeliveryDate.UTC()
		summary.DateCreated = summary.DateCreated.UTC()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(summaries) == 0 && h.policy == EmptyAsNotFound {
		return nil, errs.NewObjectNotFoundError(OrdersParamName, query.CustomerID().String())
	}

	return summaries, nil
}
