package http

import (
	"encoding/json"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body of responses that only confirm an action.
type Message struct {
	Message string `json:"message"`
}

type Service struct {
	Id           openapi_types.UUID `json:"id"`
	ServiceName  string             `json:"serviceName"`
	MaterialType string             `json:"materialType"`
	Price        json.Number        `json:"price"`
}

type Order struct {
	Id                    openapi_types.UUID `json:"id"`
	CustomerId            openapi_types.UUID `json:"customerId"`
	ServiceId             openapi_types.UUID `json:"serviceId"`
	Quantity              int                `json:"quantity"`
	ExpectedDeliveryDate  time.Time          `json:"expectedDeliveryDate"`
	AdditionalDescription string             `json:"additionalDescription"`
	Status                order.Status       `json:"status"`
	DateCreated           time.Time          `json:"dateCreated"`
}

type OrderStatus struct {
	OrderId openapi_types.UUID `json:"orderId"`
	Status  order.Status       `json:"status"`
}

type OrderSummary struct {
	Id                    openapi_types.UUID `json:"id"`
	CustomerId            openapi_types.UUID `json:"customerId"`
	ServiceId             openapi_types.UUID `json:"serviceId"`
	ServiceName           string             `json:"serviceName"`
	MaterialType          string             `json:"materialType"`
	Price                 json.Number        `json:"price"`
	Quantity              int                `json:"quantity"`
	ExpectedDeliveryDate  time.Time          `json:"expectedDeliveryDate"`
	AdditionalDescription string             `json:"additionalDescription"`
	Status                order.Status       `json:"status"`
	DateCreated           time.Time          `json:"dateCreated"`
}

// PlaceOrderRequest accepts a full order payload for compatibility with
// existing clients. Only the fields below are read; a customerId sent by the
// client is never used.
type PlaceOrderRequest struct {
	ServiceId             openapi_types.UUID `json:"serviceId"`
	Quantity              int                `json:"quantity"`
	ExpectedDeliveryDate  time.Time          `json:"expectedDeliveryDate"`
	AdditionalDescription string             `json:"additionalDescription"`
}

// EditOrderRequest is a sparse update. Absent fields, quantity <= 0, the zero
// time and the empty description all mean "keep the current value".
type EditOrderRequest struct {
	Quantity              *int       `json:"quantity,omitempty"`
	ExpectedDeliveryDate  *time.Time `json:"expectedDeliveryDate,omitempty"`
	AdditionalDescription *string    `json:"additionalDescription,omitempty"`
}

func (r EditOrderRequest) toPatch() order.Patch {
	var p order.Patch
	if r.Quantity != nil && *r.Quantity > 0 {
		p.Quantity = kernel.Some(*r.Quantity)
	}
	if r.ExpectedDeliveryDate != nil && !r.ExpectedDeliveryDate.IsZero() {
		p.ExpectedDeliveryDate = kernel.Some(r.ExpectedDeliveryDate.UTC())
	}
	if r.AdditionalDescription != nil && *r.AdditionalDescription != "" {
		p.AdditionalDescription = kernel.Some(*r.AdditionalDescription)
	}
	return p
}

func toKernelUUID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func price(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func fromService(s *catalog.Service) Service {
	return Service{
		Id:           s.ID().Bytes(),
		ServiceName:  s.Name(),
		MaterialType: s.MaterialType(),
		Price:        price(s.Price()),
	}
}

func fromOrder(o *order.Order) Order {
	return Order{
		Id:                    o.ID().Bytes(),
		CustomerId:            o.CustomerID().Bytes(),
		ServiceId:             o.ServiceID().Bytes(),
		Quantity:              o.Quantity(),
		ExpectedDeliveryDate:  o.ExpectedDeliveryDate().UTC(),
		AdditionalDescription: o.AdditionalDescription(),
		Status:                o.Status(),
		DateCreated:           o.DateCreated().UTC(),
	}
}

func fromSummary(s queries.OrderSummary) OrderSummary {
	return OrderSummary{
		Id:                    s.OrderID.Bytes(),
		CustomerId:            s.CustomerID.Bytes(),
		ServiceId:             s.ServiceID.Bytes(),
		ServiceName:           s.ServiceName,
		MaterialType:          s.MaterialType,
		Price:                 price(s.Price),
		Quantity:              s.Quantity,
		ExpectedDeliveryDate:  s.ExpectedDeliveryDate.UTC(),
		AdditionalDescription: s.AdditionalDescription,
		Status:                s.Status,
		DateCreated:           s.DateCreated.UTC(),
	}
}
