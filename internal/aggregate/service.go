package aggregate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"veritas/internal/platform/metrics"
	"veritas/internal/records"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// Service orchestrates the fan-out record reads and reduces them into a
// Summary. The three domain reads are independent, so they run concurrently;
// a failure or cancellation on any one aborts the whole aggregation. Partial
// results are disallowed: an empty section standing in for a failed read
// would be indistinguishable from a genuine compliance gap.
type Service struct {
	store     records.Store
	countries records.CountrySource
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the clock used for check-validity cutoffs in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs an aggregation Service.
func New(store records.Store, countries records.CountrySource, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "record store is required")
	}
	if countries == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "country source is required")
	}

	s := &Service{store: store, countries: countries, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Aggregate reads all domains for the organization and reduces them.
//
// Errors: CodeInvalidInput for a nil org id, CodeValidation for a bad year,
// CodeNotFound when the organization is unknown, CodeUpstream when any domain
// read fails. No internal retries or timeouts; cancellation of ctx aborts the
// read stage.
func (s *Service) Aggregate(ctx context.Context, orgID id.OrgID, year id.FinancialYear) (*Summary, error) {
	if orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "organization id is required")
	}
	if err := year.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	org, err := s.store.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	var (
		safeguarding []records.SafeguardingRecord
		income       []records.IncomeRecord
		overseas     []records.OverseasActivity
		countryMeta  map[string]records.Country
	)

	g.Go(func() error {
		var err error
		safeguarding, err = s.store.FetchSafeguardingRecords(ctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.store.FetchIncomeRecords(ctx, orgID, year)
		return err
	})
	g.Go(func() error {
		var err error
		overseas, err = s.store.FetchOverseasActivities(ctx, orgID, year)
		return err
	})
	g.Go(func() error {
		var err error
		countryMeta, err = s.countries.FetchCountryMetadata(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementAggregationFailure()
		}
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "aggregation failed",
				"org_id", orgID,
				"financial_year", year.Int(),
				"error", err,
			)
		}
		return nil, err
	}

	now := s.now()
	summary := &Summary{
		Org:           *org,
		FinancialYear: year,
		GeneratedAt:   now,
		Safeguarding:  SummarizeSafeguarding(safeguarding, now),
		Overseas:      SummarizeOverseas(overseas, countryMeta),
		Fundraising:   SummarizeFundraising(income),
	}

	if s.metrics != nil {
		s.metrics.ObserveAggregate(start)
	}
	return summary, nil
}
