// Package queries contains the read-side operations. Queries never open a
// transaction; they read through repositories or straight through gorm.
package queries

import (
	"fmt"
	"strings"
)

// EmptyResultPolicy decides how list queries report an empty result.
type EmptyResultPolicy int

const (
	// EmptyAsNotFound reports an empty list as errs.ErrObjectNotFound.
	EmptyAsNotFound EmptyResultPolicy = iota
	// EmptyAsList returns an empty slice.
	EmptyAsList
)

func (p EmptyResultPolicy) String() string {
	switch p {
	case EmptyAsNotFound:
		return "not_found"
	case EmptyAsList:
		return "list"
	default:
		return fmt.Sprintf("EmptyResultPolicy(%d)", int(p))
	}
}

// ParseEmptyResultPolicy accepts "not_found" and "list", case-insensitively.
func ParseEmptyResultPolicy(s string) (EmptyResultPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not_found", "notfound":
		return EmptyAsNotFound, nil
	case "list", "empty":
		return EmptyAsList, nil
	default:
		return EmptyAsNotFound, fmt.Errorf("unknown empty result policy %q", s)
	}
}

// PolicyFromFlag maps the boolean config switch onto a policy.
func PolicyFromFlag(emptyAsNotFound bool) EmptyResultPolicy {
	if emptyAsNotFound {
		return EmptyAsNotFound
	}
	return EmptyAsList
}
