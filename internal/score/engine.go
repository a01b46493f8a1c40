package score

import (
	"context"
	"log/slog"
	"math"
	"time"

	"veritas/internal/aggregate"
	"veritas/internal/audit"
	"veritas/internal/platform/metrics"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// Aggregator is the slice of the aggregate service the engine needs.
type Aggregator interface {
	Aggregate(ctx context.Context, orgID id.OrgID, year id.FinancialYear) (*aggregate.Summary, error)
}

// Service computes compliance scores. Category definitions and provider
// wiring are fixed at construction; Compute is then a pure function of the
// aggregated records.
type Service struct {
	aggregator Aggregator
	categories []CategoryDef
	providers  map[CategoryID]CategoryDataProvider
	logger     *slog.Logger
	metrics    *metrics.Metrics
	audit      *audit.Publisher
	now        func() time.Time
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

// WithClock overrides the clock in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithCategories replaces the default category table. Intended for tests;
// production always scores the six fixed categories.
func WithCategories(defs []CategoryDef) Option {
	return func(s *Service) {
		s.categories = defs
	}
}

// New constructs the scoring engine. The static provider backs every category
// unless a live provider is wired for it.
func New(aggregator Aggregator, static *StaticDataProvider, opts ...Option) (*Service, error) {
	if aggregator == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "aggregator is required")
	}
	if static == nil {
		static = NewStaticDataProvider()
	}

	s := &Service{
		aggregator: aggregator,
		categories: DefaultCategories,
		providers: map[CategoryID]CategoryDataProvider{
			CategorySafeguarding: NewLiveSafeguardingProvider(static),
			CategoryFundraising:  NewLiveFundraisingProvider(static),
		},
		now: time.Now,
	}
	for _, def := range s.categories {
		if _, ok := s.providers[def.ID]; !ok {
			s.providers[def.ID] = static
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	// Re-fill provider defaults in case WithCategories introduced new ids.
	for _, def := range s.categories {
		if _, ok := s.providers[def.ID]; !ok {
			s.providers[def.ID] = static
		}
	}
	return s, nil
}

// Compute aggregates current records and scores every category.
//
// Safeguarding reflects current state; income-driven categories use the
// current calendar year as the financial year.
func (s *Service) Compute(ctx context.Context, orgID id.OrgID) (*Result, error) {
	start := time.Now()
	now := s.now()

	summary, err := s.aggregator.Aggregate(ctx, orgID, id.FinancialYear(now.Year()))
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryScore, 0, len(s.categories))
	for _, def := range s.categories {
		completion, err := s.providers[def.ID].Completion(ctx, def.ID, summary)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "category completion lookup")
		}
		categories = append(categories, scoreCategory(def, completion))
	}

	overall := OverallScore(categories)
	result := &Result{
		OverallScore:    overall,
		OverallGrade:    GradeFor(overall),
		Categories:      categories,
		Recommendations: Recommend(categories, summary),
		LastUpdated:     now,
		NextReviewDate:  now.Add(reviewCadence),
	}

	if s.audit != nil {
		// Fire-and-forget: a failed audit write never fails the computation.
		if err := s.audit.Emit(ctx, audit.Event{
			OrgID:  orgID.String(),
			Action: audit.ActionScoreComputed,
			Detail: string(result.OverallGrade),
		}); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "audit emit failed", "org_id", orgID, "error", err)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveScore(start)
	}
	return result, nil
}

// scoreCategory resolves completion flags against a definition and computes
// the category score.
func scoreCategory(def CategoryDef, completion map[string]bool) CategoryScore {
	cs := CategoryScore{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Weight:      def.Weight,
		Items:       make([]Item, 0, len(def.Items)),
	}
	for _, item := range def.Items {
		completed := completion[item.ID]
		cs.MaxPoints += item.Points
		if completed {
			cs.CurrentPoints += item.Points
		}
		cs.Items = append(cs.Items, Item{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Points:      item.Points,
			Completed:   completed,
		})
	}
	cs.Score = CategoryScoreValue(cs.CurrentPoints, cs.MaxPoints)
	cs.Grade = GradeFor(cs.Score)
	return cs
}

// CategoryScoreValue is round(completed/total*100), 0 when total is 0. A
// category with no weighted items is degenerate but valid.
func CategoryScoreValue(completedPoints, totalPoints int) int {
	if totalPoints == 0 {
		return 0
	}
	return int(math.Round(float64(completedPoints) / float64(totalPoints) * 100))
}

// OverallScore is the weight-normalized mean of category scores:
// round(sum(score*weight)/sum(weight)), 0 when the weight sum is 0.
func OverallScore(categories []CategoryScore) int {
	var weighted, weightSum float64
	for _, c := range categories {
		weighted += float64(c.Score) * float64(c.Weight)
		weightSum += float64(c.Weight)
	}
	if weightSum == 0 {
		return 0
	}
	return int(math.Round(weighted / weightSum))
}
