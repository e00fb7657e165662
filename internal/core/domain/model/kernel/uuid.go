package kernel

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used for services, orders and
// customers. It wraps github.com/google/uuid so that the domain never handles
// a nil identifier by accident: the zero value fails Validate.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	customerID, err := kernel.UUIDFromString(header)
//	if err != nil {
//	    return fmt.Errorf("invalid customer id: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any textual form accepted by uuid.Parse, including
// braces, the urn prefix and the hyphen-less form.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromCanonicalString accepts only the canonical
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form (either letter case) and
// rejects the nil UUID. It is used at trust boundaries where the caller must
// send exactly one well-formed identifier.
func UUIDFromCanonicalString(s string) (UUID, error) {
	if len(s) != 36 {
		return UUID{}, fmt.Errorf("invalid UUID format: expected 36 characters, got %d", len(s))
	}

	id, err := UUIDFromString(s)
	if err != nil {
		return UUID{}, err
	}

	if !strings.EqualFold(id.String(), s) {
		return UUID{}, fmt.Errorf("invalid UUID format: %q is not canonical", s)
	}

	if err = id.Validate(); err != nil {
		return UUID{}, err
	}

	return id, nil
}

// UUIDFromBytes builds a UUID from its 16-byte form and rejects the nil UUID.
// Repositories use it when restoring identifiers read from the database.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical lower-case representation.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
