package aggregate

import "veritas/internal/records"

// Classification predicates live here so each rule has exactly one
// definition and one test.

// High-value income threshold in the base currency; any single record above
// it needs a compliance review regardless of donor.
const complianceReviewThreshold = 100_000

// trustedTransferMethods move money through regulated banking channels and
// need no explanation on the annual return.
var trustedTransferMethods = map[records.TransferMethod]bool{
	records.MethodBankTransfer: true,
	records.MethodWireTransfer: true,
}

// RequiresExplanation reports whether a transfer method must be explained to
// the regulator. Anything outside the trusted banking set qualifies.
func RequiresExplanation(m records.TransferMethod) bool {
	return !trustedTransferMethods[m]
}

// RequiresComplianceReview reports whether a single income record needs a
// compliance review. Any one condition suffices: high value, corporate donor,
// or a related-party transaction.
func RequiresComplianceReview(r records.IncomeRecord) bool {
	if r.Amount > complianceReviewThreshold {
		return true
	}
	if r.DonorType == records.DonorCorporate {
		return true
	}
	return r.IsRelatedParty
}

// IsHighRisk reports whether a country carries a high-risk flag in the
// reference data. Unknown countries are not assumed risky; the completeness
// detector surfaces data gaps separately.
func IsHighRisk(c records.Country) bool {
	return c.HighRisk
}

// percentOf returns part as a percentage of total, 0 when total is 0.
// Degenerate totals are valid inputs and must never produce NaN.
func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
