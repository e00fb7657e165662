package catalog

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via RestoreService constructor")

// Service is a catalog entry: a laundry offering with its material type and
// unit price. It is immutable.
type Service struct {
	id           kernel.UUID
	name         string
	materialType string
	price        decimal.Decimal

	isConstructed bool
}

// RestoreService rebuilds a service read from the catalog tables.
func RestoreService(id kernel.UUID, name, materialType string, price decimal.Decimal) (*Service, error) {
	s := &Service{
		materialType:  materialType,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) MaterialType() string {
	return s.materialType
}

func (s *Service) Price() decimal.Decimal {
	return s.price
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	s.name = name
	return nil
}

func (s *Service) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price))
	}
	s.price = price
	return nil
}
