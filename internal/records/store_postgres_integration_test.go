//go:build integration

package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"veritas/internal/records"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
	"veritas/pkg/testutil/containers"
)

const schema = `
CREATE TABLE organizations (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	registration_no TEXT NOT NULL,
	financial_year_end TIMESTAMPTZ NOT NULL
);
CREATE TABLE safeguarding_records (
	id TEXT PRIMARY KEY,
	org_id UUID NOT NULL REFERENCES organizations(id),
	person_name TEXT NOT NULL,
	role TEXT NOT NULL,
	works_with_children BOOLEAN NOT NULL DEFAULT FALSE,
	works_with_vulnerable_adults BOOLEAN NOT NULL DEFAULT FALSE,
	check_type TEXT NOT NULL,
	check_issued_at TIMESTAMPTZ,
	check_expires_at TIMESTAMPTZ,
	training_completed BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE income_records (
	id TEXT PRIMARY KEY,
	org_id UUID NOT NULL REFERENCES organizations(id),
	amount NUMERIC NOT NULL,
	source TEXT NOT NULL,
	donor_type TEXT NOT NULL,
	donor_name TEXT NOT NULL DEFAULT '',
	is_related_party BOOLEAN NOT NULL DEFAULT FALSE,
	financial_year INT NOT NULL,
	received_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE overseas_activities (
	id TEXT PRIMARY KEY,
	org_id UUID NOT NULL REFERENCES organizations(id),
	country_code TEXT NOT NULL,
	amount NUMERIC NOT NULL,
	transfer_method TEXT NOT NULL,
	activity_type TEXT NOT NULL,
	partner_name TEXT NOT NULL DEFAULT '',
	partner_verified BOOLEAN NOT NULL DEFAULT FALSE,
	financial_year INT NOT NULL
);
CREATE TABLE countries (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	high_risk BOOLEAN NOT NULL DEFAULT FALSE,
	sanctions_concern BOOLEAN NOT NULL DEFAULT FALSE
);
`

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *records.PostgresStore
	orgID id.OrgID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	_, err := s.pg.DB.Exec(schema)
	s.Require().NoError(err)
	s.store = records.NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	for _, table := range []string{"safeguarding_records", "income_records", "overseas_activities", "countries", "organizations"} {
		_, err := s.pg.DB.Exec("DELETE FROM " + table)
		s.Require().NoError(err)
	}

	s.orgID = id.NewOrgID()
	_, err := s.pg.DB.Exec(
		`INSERT INTO organizations (id, name, registration_no, financial_year_end) VALUES ($1, $2, $3, $4)`,
		s.orgID.String(), "Harbour Light Trust", "1184627",
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestGetOrganization() {
	org, err := s.store.GetOrganization(context.Background(), s.orgID)
	s.Require().NoError(err)
	s.Equal(s.orgID, org.ID)
	s.Equal("Harbour Light Trust", org.Name)
	s.Equal("1184627", org.RegistrationNo)
}

func (s *PostgresStoreSuite) TestGetOrganizationNotFound() {
	_, err := s.store.GetOrganization(context.Background(), id.NewOrgID())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PostgresStoreSuite) TestFetchSafeguardingRecords() {
	expires := time.Now().AddDate(1, 0, 0).UTC()
	_, err := s.pg.DB.Exec(
		`INSERT INTO safeguarding_records
		 (id, org_id, person_name, role, works_with_children, check_type, check_expires_at, training_completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		"sg-1", s.orgID.String(), "A. Whitfield", "youth_worker", true, "enhanced", expires, true,
	)
	s.Require().NoError(err)

	recs, err := s.store.FetchSafeguardingRecords(context.Background(), s.orgID)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("A. Whitfield", recs[0].PersonName)
	s.True(recs[0].WorksWithChildren)
	s.Require().NotNil(recs[0].CheckExpiresAt)
	s.WithinDuration(expires, *recs[0].CheckExpiresAt, time.Second)
}

func (s *PostgresStoreSuite) TestFetchIncomeRecordsScopedByYear() {
	insert := func(recID string, year int, amount float64) {
		_, err := s.pg.DB.Exec(
			`INSERT INTO income_records (id, org_id, amount, source, donor_type, financial_year, received_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			recID, s.orgID.String(), amount, "donations_legacies", "individual", year, time.Now().UTC(),
		)
		s.Require().NoError(err)
	}
	insert("in-1", 2026, 42000)
	insert("in-2", 2025, 9000)

	recs, err := s.store.FetchIncomeRecords(context.Background(), s.orgID, id.FinancialYear(2026))
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal("in-1", recs[0].ID)
	s.Equal(records.SourceDonationsLegacies, recs[0].Source)
	s.InDelta(42000, recs[0].Amount, 0.001)
}

func (s *PostgresStoreSuite) TestFetchOverseasActivitiesOrderedBySpend() {
	insert := func(recID, country string, amount float64) {
		_, err := s.pg.DB.Exec(
			`INSERT INTO overseas_activities (id, org_id, country_code, amount, transfer_method, activity_type, financial_year)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			recID, s.orgID.String(), country, amount, "bank_transfer", "grant", 2026,
		)
		s.Require().NoError(err)
	}
	insert("ov-1", "KE", 12000)
	insert("ov-2", "SS", 30000)

	acts, err := s.store.FetchOverseasActivities(context.Background(), s.orgID, id.FinancialYear(2026))
	s.Require().NoError(err)
	s.Require().Len(acts, 2)
	s.Equal("SS", acts[0].CountryCode)
	s.Equal(records.MethodBankTransfer, acts[0].TransferMethod)
}

func (s *PostgresStoreSuite) TestFetchCountryMetadata() {
	_, err := s.pg.DB.Exec(
		`INSERT INTO countries (code, name, high_risk, sanctions_concern) VALUES
		 ('KE', 'Kenya', FALSE, FALSE),
		 ('SS', 'South Sudan', TRUE, TRUE)`,
	)
	s.Require().NoError(err)

	countries, err := s.store.FetchCountryMetadata(context.Background())
	s.Require().NoError(err)
	s.Require().Len(countries, 2)
	s.True(countries["SS"].HighRisk)
	s.False(countries["KE"].HighRisk)
}
