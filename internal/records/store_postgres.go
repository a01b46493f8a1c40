package records

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// PostgresStore reads compliance records from postgres. It is read-only:
// record entry happens in the upstream application, this engine only
// aggregates.
type PostgresStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewPostgres constructs a postgres-backed store over an open connection.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// OpenPostgres opens a connection pool for the given URL.
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *PostgresStore) GetOrganization(ctx context.Context, orgID id.OrgID) (*Organization, error) {
	query, args, err := s.sb.
		Select("id", "name", "registration_no", "financial_year_end").
		From("organizations").
		Where(sq.Eq{"id": orgID.String()}).
		ToSql()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build organization query")
	}

	var org Organization
	var rawID string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&rawID, &org.Name, &org.RegistrationNo, &org.FinancialYearEnd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "organization %s not found", orgID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read organization")
	}
	parsed, err := id.ParseOrgID(rawID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "malformed organization id")
	}
	org.ID = parsed
	return &org, nil
}

func (s *PostgresStore) FetchSafeguardingRecords(ctx context.Context, orgID id.OrgID) ([]SafeguardingRecord, error) {
	query, args, err := s.sb.
		Select("id", "person_name", "role", "works_with_children", "works_with_vulnerable_adults",
			"check_type", "check_issued_at", "check_expires_at", "training_completed").
		From("safeguarding_records").
		Where(sq.Eq{"org_id": orgID.String()}).
		OrderBy("person_name").
		ToSql()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build safeguarding query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read safeguarding records")
	}
	defer rows.Close()

	var out []SafeguardingRecord
	for rows.Next() {
		r := SafeguardingRecord{OrgID: orgID}
		if err := rows.Scan(&r.ID, &r.PersonName, &r.Role, &r.WorksWithChildren,
			&r.WorksWithVulnerableAdults, &r.CheckType, &r.CheckIssuedAt,
			&r.CheckExpiresAt, &r.TrainingCompleted); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "scan safeguarding record")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "iterate safeguarding records")
	}
	return out, nil
}

func (s *PostgresStore) FetchIncomeRecords(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]IncomeRecord, error) {
	query, args, err := s.sb.
		Select("id", "amount", "source", "donor_type", "donor_name", "is_related_party", "received_at").
		From("income_records").
		Where(sq.Eq{"org_id": orgID.String(), "financial_year": year.Int()}).
		OrderBy("received_at").
		ToSql()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build income query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read income records")
	}
	defer rows.Close()

	var out []IncomeRecord
	for rows.Next() {
		r := IncomeRecord{OrgID: orgID, FinancialYear: year}
		var source, donorType string
		if err := rows.Scan(&r.ID, &r.Amount, &source, &donorType, &r.DonorName,
			&r.IsRelatedParty, &r.ReceivedAt); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "scan income record")
		}
		r.Source = IncomeSource(source)
		r.DonorType = DonorType(donorType)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "iterate income records")
	}
	return out, nil
}

func (s *PostgresStore) FetchOverseasActivities(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]OverseasActivity, error) {
	query, args, err := s.sb.
		Select("id", "country_code", "amount", "transfer_method", "activity_type",
			"partner_name", "partner_verified").
		From("overseas_activities").
		Where(sq.Eq{"org_id": orgID.String(), "financial_year": year.Int()}).
		OrderBy("amount DESC").
		ToSql()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build overseas query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read overseas activities")
	}
	defer rows.Close()

	var out []OverseasActivity
	for rows.Next() {
		r := OverseasActivity{OrgID: orgID, FinancialYear: year}
		var method string
		if err := rows.Scan(&r.ID, &r.CountryCode, &r.Amount, &method, &r.ActivityType,
			&r.PartnerName, &r.PartnerVerified); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "scan overseas activity")
		}
		r.TransferMethod = TransferMethod(method)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "iterate overseas activities")
	}
	return out, nil
}

func (s *PostgresStore) FetchCountryMetadata(ctx context.Context) (map[string]Country, error) {
	query, args, err := s.sb.
		Select("code", "name", "high_risk", "sanctions_concern").
		From("countries").
		ToSql()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build countries query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read country metadata")
	}
	defer rows.Close()

	out := make(map[string]Country)
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Code, &c.Name, &c.HighRisk, &c.SanctionsConcern); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "scan country")
		}
		out[c.Code] = c
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "iterate countries")
	}
	return out, nil
}
