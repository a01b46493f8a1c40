package domain

import (
	"strconv"

	dErrors "veritas/pkg/domain-errors"
)

// FinancialYear is the calendar year in which an organization's 12-month
// reporting period ends. It scopes income and overseas-activity aggregation;
// safeguarding reflects current state and ignores it.
type FinancialYear int

// Year bounds are a sanity check on external input, not regulatory rules.
const (
	minFinancialYear = 1990
	maxFinancialYear = 2100
)

// ParseFinancialYear constructs a FinancialYear from external input.
//
// Errors: returns CodeValidation when the value is not an integer or falls
// outside the supported range. A negative year is always rejected.
func ParseFinancialYear(s string) (FinancialYear, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeValidation, "financial year is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, "financial year must be an integer")
	}
	fy := FinancialYear(n)
	if err := fy.Validate(); err != nil {
		return 0, err
	}
	return fy, nil
}

// Validate checks the year against the supported range.
func (y FinancialYear) Validate() error {
	if y < minFinancialYear || y > maxFinancialYear {
		return dErrors.Newf(dErrors.CodeValidation, "financial year %d out of range", int(y))
	}
	return nil
}

// Int returns the year as a plain int for storage and formatting.
func (y FinancialYear) Int() int {
	return int(y)
}
