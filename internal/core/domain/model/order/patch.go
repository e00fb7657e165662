package order

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// Patch lists the customer-editable fields of an order. Absent fields keep
// their current value; a present AdditionalDescription of "" clears it.
type Patch struct {
	Quantity              kernel.Optional[int]
	ExpectedDeliveryDate  kernel.Optional[time.Time]
	AdditionalDescription kernel.Optional[string]
}

// IsEmpty reports whether applying p changes nothing.
func (p Patch) IsEmpty() bool {
	return !p.Quantity.IsSet() && !p.ExpectedDeliveryDate.IsSet() && !p.AdditionalDescription.IsSet()
}
