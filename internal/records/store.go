package records

import (
	"context"

	id "veritas/pkg/domain"
)

// Store is the read port the engine consumes. Implementations must return
// coded errors: CodeNotFound when the organization does not exist,
// CodeUpstream when the underlying read fails. The engine never retries;
// retry policy belongs to the caller.
type Store interface {
	// GetOrganization resolves identity for reporting headers.
	GetOrganization(ctx context.Context, orgID id.OrgID) (*Organization, error)

	// FetchSafeguardingRecords returns the current vetting state for all
	// tracked people in the organization.
	FetchSafeguardingRecords(ctx context.Context, orgID id.OrgID) ([]SafeguardingRecord, error)

	// FetchIncomeRecords returns income records for the financial year.
	FetchIncomeRecords(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]IncomeRecord, error)

	// FetchOverseasActivities returns overseas spend for the financial year.
	FetchOverseasActivities(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]OverseasActivity, error)
}

// CountrySource provides static country reference data. Separated from Store
// because it is org-independent and cacheable.
type CountrySource interface {
	// FetchCountryMetadata returns all known countries keyed by code.
	FetchCountryMetadata(ctx context.Context) (map[string]Country, error)
}
