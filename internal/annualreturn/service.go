package annualreturn

import (
	"context"
	"log/slog"
	"time"

	"veritas/internal/aggregate"
	"veritas/internal/audit"
	"veritas/internal/platform/metrics"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// Aggregator is the slice of the aggregate service the builder needs.
type Aggregator interface {
	Aggregate(ctx context.Context, orgID id.OrgID, year id.FinancialYear) (*aggregate.Summary, error)
}

// Service builds annual return snapshots.
type Service struct {
	aggregator Aggregator
	logger     *slog.Logger
	metrics    *metrics.Metrics
	audit      *audit.Publisher
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

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

// New constructs the snapshot builder.
func New(aggregator Aggregator, opts ...Option) (*Service, error) {
	if aggregator == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "aggregator is required")
	}
	s := &Service{aggregator: aggregator}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BuildSnapshot aggregates the organization's records for the year and merges
// the three domain summaries into one snapshot. Aggregation failures
// propagate unchanged: a snapshot is never built from partial data.
func (s *Service) BuildSnapshot(ctx context.Context, orgID id.OrgID, year id.FinancialYear) (*Snapshot, error) {
	start := time.Now()

	summary, err := s.aggregator.Aggregate(ctx, orgID, year)
	if err != nil {
		return nil, err
	}

	missing := DetectMissingFields(summary)
	snapshot := &Snapshot{
		OrgID:            summary.Org.ID,
		OrgName:          summary.Org.Name,
		RegistrationNo:   summary.Org.RegistrationNo,
		FinancialYear:    year,
		FinancialYearEnd: summary.Org.FinancialYearEnd,
		GeneratedAt:      summary.GeneratedAt,
		Safeguarding:     summary.Safeguarding,
		Overseas:         summary.Overseas,
		Fundraising:      summary.Fundraising,
		Completeness:     Completeness(missing),
		MissingFields:    missing,
	}

	if s.audit != nil {
		// Fire-and-forget: a failed audit write never fails the build.
		if err := s.audit.Emit(ctx, audit.Event{
			OrgID:         orgID.String(),
			Action:        audit.ActionReturnGenerated,
			FinancialYear: year.Int(),
		}); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "audit emit failed", "org_id", orgID, "error", err)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveSnapshotBuild(start)
	}
	return snapshot, nil
}

// Fields builds a fresh snapshot and projects it into the exportable field
// list, optionally narrowed to one section. Section filtering happens after
// projection, so a filtered list is always a subsequence of the full one.
func (s *Service) Fields(ctx context.Context, orgID id.OrgID, year id.FinancialYear, section string) ([]FieldMapping, error) {
	snapshot, err := s.BuildSnapshot(ctx, orgID, year)
	if err != nil {
		return nil, err
	}

	fields := MapFields(snapshot)
	if section != "" {
		fields, err = FilterBySection(fields, section)
		if err != nil {
			return nil, err
		}
	}

	if s.audit != nil {
		if err := s.audit.Emit(ctx, audit.Event{
			OrgID:         orgID.String(),
			Action:        audit.ActionFieldsExported,
			FinancialYear: year.Int(),
			Detail:        section,
		}); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "audit emit failed", "org_id", orgID, "error", err)
		}
	}
	return fields, nil
}
