package records

import (
	"time"

	id "veritas/pkg/domain"
)

// Seed populates an in-memory store with a demo organization so the server
// is usable without postgres. Returns the seeded organization id.
func Seed(store *InMemoryStore) id.OrgID {
	orgID := id.NewOrgID()
	now := time.Now()

	store.PutOrganization(Organization{
		ID:               orgID,
		Name:             "Harbour Light Trust",
		RegistrationNo:   "1184627",
		FinancialYearEnd: time.Date(now.Year(), time.March, 31, 0, 0, 0, 0, time.UTC),
	})

	valid := now.AddDate(1, 0, 0)
	expired := now.AddDate(-1, 0, 0)
	issued := now.AddDate(-2, 0, 0)
	store.AddSafeguardingRecords(orgID,
		SafeguardingRecord{ID: "sg-1", OrgID: orgID, PersonName: "A. Whitfield", Role: "youth_worker", WorksWithChildren: true, CheckType: "enhanced", CheckIssuedAt: &issued, CheckExpiresAt: &valid, TrainingCompleted: true},
		SafeguardingRecord{ID: "sg-2", OrgID: orgID, PersonName: "B. Osei", Role: "care_visitor", WorksWithVulnerableAdults: true, CheckType: "enhanced", CheckIssuedAt: &issued, CheckExpiresAt: &expired, TrainingCompleted: false},
		SafeguardingRecord{ID: "sg-3", OrgID: orgID, PersonName: "C. Laurent", Role: "trustee", CheckType: "basic", CheckIssuedAt: &issued, CheckExpiresAt: &valid, TrainingCompleted: true},
	)

	year := id.FinancialYear(now.Year())
	store.AddIncomeRecords(orgID,
		IncomeRecord{ID: "in-1", OrgID: orgID, Amount: 42000, Source: SourceDonationsLegacies, DonorType: DonorIndividual, DonorName: "J. Moreton", FinancialYear: year, ReceivedAt: now.AddDate(0, -6, 0)},
		IncomeRecord{ID: "in-2", OrgID: orgID, Amount: 125000, Source: SourceDonationsLegacies, DonorType: DonorCorporate, DonorName: "Calder Holdings Ltd", FinancialYear: year, ReceivedAt: now.AddDate(0, -4, 0)},
		IncomeRecord{ID: "in-3", OrgID: orgID, Amount: 18000, Source: SourceInvestments, DonorType: DonorOther, FinancialYear: year, ReceivedAt: now.AddDate(0, -2, 0)},
		IncomeRecord{ID: "in-4", OrgID: orgID, Amount: 9500, Source: SourceCharitableActivities, DonorType: DonorTrust, DonorName: "Fenwick Family Trust", IsRelatedParty: true, FinancialYear: year, ReceivedAt: now.AddDate(0, -1, 0)},
	)

	store.AddOverseasActivities(orgID,
		OverseasActivity{ID: "ov-1", OrgID: orgID, CountryCode: "KE", Amount: 30000, TransferMethod: MethodBankTransfer, ActivityType: "grant", PartnerName: "Nairobi Shelter Network", PartnerVerified: true, FinancialYear: year},
		OverseasActivity{ID: "ov-2", OrgID: orgID, CountryCode: "SS", Amount: 12000, TransferMethod: MethodCashCourier, ActivityType: "direct_delivery", PartnerName: "Juba Relief Collective", PartnerVerified: false, FinancialYear: year},
	)

	store.PutCountries(
		Country{Code: "KE", Name: "Kenya"},
		Country{Code: "SS", Name: "South Sudan", HighRisk: true, SanctionsConcern: true},
		Country{Code: "FR", Name: "France"},
	)

	return orgID
}
