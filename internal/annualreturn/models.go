// Package annualreturn builds the annual return snapshot and projects it into
// the ordered field list that mirrors the regulator's paper form.
package annualreturn

import (
	"time"

	"veritas/internal/aggregate"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// SectionID names one section of the return.
type SectionID string

const (
	SectionCharity      SectionID = "charity"
	SectionSafeguarding SectionID = "safeguarding"
	SectionOverseas     SectionID = "overseas"
	SectionFundraising  SectionID = "fundraising"
)

// sectionPrefixes assigns each section its stable field-id letter. Field ids
// and their prefixes are part of the export contract; downstream users paste
// values into the regulator's form by id.
var sectionPrefixes = map[SectionID]string{
	SectionCharity:      "a",
	SectionSafeguarding: "b",
	SectionOverseas:     "c",
	SectionFundraising:  "d",
}

// ParseSectionID constructs a SectionID from external input.
//
// Errors: returns CodeValidation when the value is empty or unknown.
func ParseSectionID(s string) (SectionID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "section id cannot be empty")
	}
	sec := SectionID(s)
	if _, ok := sectionPrefixes[sec]; !ok {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown section id %q", s)
	}
	return sec, nil
}

// Prefix returns the section's field-id letter.
func (s SectionID) Prefix() string {
	return sectionPrefixes[s]
}

func (s SectionID) String() string {
	return string(s)
}

// Impact grades how much a missing field hurts the return.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// MissingField flags a structural data gap, distinct from scoring: the data
// needed for a form answer simply is not there.
type MissingField struct {
	Section     SectionID `json:"section"`
	FieldKey    string    `json:"field_key"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	Impact      Impact    `json:"impact"`
}

// Snapshot is the merged annual return state for one organization and year.
// It is transient: rebuilding later with changed records produces an
// independent snapshot with no shared mutable state.
type Snapshot struct {
	OrgID            id.OrgID                      `json:"org_id"`
	OrgName          string                        `json:"org_name"`
	RegistrationNo   string                        `json:"registration_no"`
	FinancialYear    id.FinancialYear              `json:"financial_year"`
	FinancialYearEnd time.Time                     `json:"financial_year_end"`
	GeneratedAt      time.Time                     `json:"generated_at"`
	Safeguarding     aggregate.SafeguardingSummary `json:"safeguarding"`
	Overseas         aggregate.OverseasSummary     `json:"overseas"`
	Fundraising      aggregate.FundraisingSummary  `json:"fundraising"`
	Completeness     int                           `json:"completeness"`
	MissingFields    []MissingField                `json:"missing_fields"`
}

// FieldMapping is one exportable form field with dual representations:
// DisplayValue formatted for reading, CopyValue plain for pasting into the
// regulator's form.
type FieldMapping struct {
	FieldID      string    `json:"field_id"`
	SectionID    SectionID `json:"section_id"`
	Question     string    `json:"question"`
	Label        string    `json:"label"`
	RawValue     any       `json:"raw_value"`
	DisplayValue string    `json:"display_value"`
	CopyValue    string    `json:"copy_value"`
	Required     bool      `json:"required"`
}
