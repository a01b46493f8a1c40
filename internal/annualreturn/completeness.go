package annualreturn

import (
	"math"

	"veritas/internal/aggregate"
)

// totalExpectedFields approximates the number of required form fields. It is
// a coarse proxy for the completeness percentage, not a per-field audit.
const totalExpectedFields = 24

// DetectMissingFields flags structural data gaps in the aggregated records.
// These are absence-of-data findings, not quality judgments; scoring handles
// quality separately.
func DetectMissingFields(summary *aggregate.Summary) []MissingField {
	var missing []MissingField

	if summary.Safeguarding.TotalPeople == 0 {
		missing = append(missing, MissingField{
			Section:     SectionSafeguarding,
			FieldKey:    "safeguarding_records",
			Description: "No safeguarding records exist for any member of staff or volunteer",
			Required:    true,
			Impact:      ImpactHigh,
		})
	}

	if summary.Overseas.HasOperations && summary.Overseas.PartnersVerified == 0 {
		missing = append(missing, MissingField{
			Section:     SectionOverseas,
			FieldKey:    "verified_partners",
			Description: "Overseas activity is recorded but no delivery partner is verified",
			Required:    false,
			Impact:      ImpactMedium,
		})
	}

	if summary.Fundraising.RecordCount == 0 {
		missing = append(missing, MissingField{
			Section:     SectionFundraising,
			FieldKey:    "income_records",
			Description: "No income records exist for the financial year",
			Required:    true,
			Impact:      ImpactHigh,
		})
	}

	return missing
}

// Completeness converts missing required fields into a 0-100 percentage
// against the fixed expected-field count.
func Completeness(missing []MissingField) int {
	required := 0
	for _, m := range missing {
		if m.Required {
			required++
		}
	}
	return int(math.Round(float64(totalExpectedFields-required) / float64(totalExpectedFields) * 100))
}
