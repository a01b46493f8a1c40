package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	orgID id.OrgID
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
	s.orgID = id.NewOrgID()
	s.store.PutOrganization(Organization{ID: s.orgID, Name: "Test Charity"})
}

func (s *MemoryStoreSuite) TestUnknownOrganization() {
	unknown := id.NewOrgID()

	_, err := s.store.GetOrganization(s.ctx, unknown)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.store.FetchSafeguardingRecords(s.ctx, unknown)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.store.FetchIncomeRecords(s.ctx, unknown, 2024)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.store.FetchOverseasActivities(s.ctx, unknown, 2024)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *MemoryStoreSuite) TestFinancialYearScoping() {
	s.store.AddIncomeRecords(s.orgID,
		IncomeRecord{ID: "a", OrgID: s.orgID, Amount: 100, Source: SourceOther, DonorType: DonorOther, FinancialYear: 2023},
		IncomeRecord{ID: "b", OrgID: s.orgID, Amount: 200, Source: SourceOther, DonorType: DonorOther, FinancialYear: 2024},
	)
	s.store.AddOverseasActivities(s.orgID,
		OverseasActivity{ID: "c", OrgID: s.orgID, CountryCode: "KE", Amount: 50, TransferMethod: MethodBankTransfer, FinancialYear: 2024},
	)

	income, err := s.store.FetchIncomeRecords(s.ctx, s.orgID, 2024)
	s.Require().NoError(err)
	s.Len(income, 1)
	s.Equal("b", income[0].ID)

	overseas, err := s.store.FetchOverseasActivities(s.ctx, s.orgID, 2023)
	s.Require().NoError(err)
	s.Empty(overseas)
}

func (s *MemoryStoreSuite) TestReturnedSlicesAreCopies() {
	s.store.AddSafeguardingRecords(s.orgID,
		SafeguardingRecord{ID: "sg", OrgID: s.orgID, PersonName: "A"},
	)

	recs, err := s.store.FetchSafeguardingRecords(s.ctx, s.orgID)
	s.Require().NoError(err)
	recs[0].PersonName = "mutated"

	again, err := s.store.FetchSafeguardingRecords(s.ctx, s.orgID)
	s.Require().NoError(err)
	s.Equal("A", again[0].PersonName)
}

func (s *MemoryStoreSuite) TestCountryMetadata() {
	s.store.PutCountries(
		Country{Code: "SS", Name: "South Sudan", HighRisk: true},
		Country{Code: "FR", Name: "France"},
	)

	countries, err := s.store.FetchCountryMetadata(s.ctx)
	s.Require().NoError(err)
	s.Len(countries, 2)
	s.True(countries["SS"].HighRisk)
	s.False(countries["FR"].HighRisk)
}

func (s *MemoryStoreSuite) TestCheckValidity() {
	now := time.Now()
	future := now.AddDate(0, 6, 0)
	past := now.AddDate(0, -6, 0)

	s.True(SafeguardingRecord{CheckExpiresAt: &future}.HasValidCheck(now))
	s.False(SafeguardingRecord{CheckExpiresAt: &past}.HasValidCheck(now))
	s.False(SafeguardingRecord{}.HasValidCheck(now))

	s.True(SafeguardingRecord{CheckExpiresAt: &past}.HasExpiredCheck(now))
	s.False(SafeguardingRecord{CheckExpiresAt: &future}.HasExpiredCheck(now))
	s.False(SafeguardingRecord{}.HasExpiredCheck(now))
}
