// Package domain holds shared identifier and value types used across modules.
package domain

import (
	"github.com/google/uuid"

	dErrors "veritas/pkg/domain-errors"
)

// OrgID identifies a registered organization.
// Invariant: non-nil UUID once parsed through ParseOrgID.
type OrgID uuid.UUID

// ParseOrgID constructs an OrgID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not a UUID.
func ParseOrgID(s string) (OrgID, error) {
	if s == "" {
		return OrgID{}, dErrors.New(dErrors.CodeInvalidInput, "organization id cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return OrgID{}, dErrors.New(dErrors.CodeInvalidInput, "organization id must be a UUID")
	}
	return OrgID(id), nil
}

// NewOrgID generates a fresh organization id.
func NewOrgID() OrgID {
	return OrgID(uuid.New())
}

// IsNil reports whether the id is the zero UUID.
func (id OrgID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// String returns the canonical UUID string.
func (id OrgID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id as its canonical UUID string for JSON and log
// output.
func (id OrgID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *OrgID) UnmarshalText(b []byte) error {
	parsed, err := ParseOrgID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
