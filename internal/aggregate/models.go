// Package aggregate reduces raw compliance records into the per-domain
// summaries the scoring engine and annual return are built from. All
// reductions are pure; the only I/O is the fan-out read in Service.Aggregate.
package aggregate

import (
	"time"

	"veritas/internal/records"
	id "veritas/pkg/domain"
)

// Summary bundles the three independently computed domain summaries plus the
// organization identity they belong to. It is a transient value: recomputing
// later with changed records produces an independent result.
type Summary struct {
	Org           records.Organization
	FinancialYear id.FinancialYear
	GeneratedAt   time.Time
	Safeguarding  SafeguardingSummary
	Overseas      OverseasSummary
	Fundraising   FundraisingSummary
}

// SafeguardingSummary reflects current vetting state; it ignores the
// financial year.
type SafeguardingSummary struct {
	TotalPeople                 int `json:"total_people"`
	WorkingWithChildren         int `json:"working_with_children"`
	WorkingWithVulnerableAdults int `json:"working_with_vulnerable_adults"`
	ValidChecks                 int `json:"valid_checks"`
	ExpiredChecks               int `json:"expired_checks"`
	TrainingComplete            int `json:"training_complete"`
}

// ValidCheckRatio returns the share of tracked people holding a current
// check, 0 when nobody is tracked.
func (s SafeguardingSummary) ValidCheckRatio() float64 {
	if s.TotalPeople == 0 {
		return 0
	}
	return float64(s.ValidChecks) / float64(s.TotalPeople)
}

// CountrySpend is one row of the per-country overseas breakdown.
type CountrySpend struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	TotalSpend    float64 `json:"total_spend"`
	ActivityCount int     `json:"activity_count"`
	HighRisk      bool    `json:"high_risk"`
}

// MethodSpend is one row of the per-transfer-method breakdown.
type MethodSpend struct {
	Method              records.TransferMethod `json:"method"`
	Amount              float64                `json:"amount"`
	PercentOfTotal      float64                `json:"percent_of_total"`
	RequiresExplanation bool                   `json:"requires_explanation"`
}

// OverseasSummary covers overseas activity for one financial year.
type OverseasSummary struct {
	HasOperations    bool           `json:"has_operations"`
	TotalSpend       float64        `json:"total_spend"`
	Countries        []CountrySpend `json:"countries"`
	Methods          []MethodSpend  `json:"methods"`
	PartnersVerified int            `json:"partners_verified"`
	PartnersTotal    int            `json:"partners_total"`
}

// HasHighRiskActivity reports whether any spend went to a high-risk country.
func (s OverseasSummary) HasHighRiskActivity() bool {
	for _, c := range s.Countries {
		if c.HighRisk {
			return true
		}
	}
	return false
}

// SourceAmount is one row of the income-by-source breakdown.
type SourceAmount struct {
	Source         records.IncomeSource `json:"source"`
	Amount         float64              `json:"amount"`
	PercentOfTotal float64              `json:"percent_of_total"`
}

// DonationDetail identifies a single highest donation.
type DonationDetail struct {
	DonorName string  `json:"donor_name"`
	Amount    float64 `json:"amount"`
}

// FundraisingSummary covers income for one financial year.
type FundraisingSummary struct {
	TotalIncome               float64         `json:"total_income"`
	Sources                   []SourceAmount  `json:"sources"`
	HighestCorporateDonation  *DonationDetail `json:"highest_corporate_donation,omitempty"`
	HighestIndividualDonation *DonationDetail `json:"highest_individual_donation,omitempty"`
	RelatedPartyTotal         float64         `json:"related_party_total"`
	HasRelatedParty           bool            `json:"has_related_party"`
	RecordsNeedingReview      int             `json:"records_needing_review"`
	RecordCount               int             `json:"record_count"`
}
