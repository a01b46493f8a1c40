// Package httptransport is the thin HTTP layer. Handlers parse requests and
// translate domain errors; business logic stays in the services.
package httptransport

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veritas/internal/annualreturn"
	"veritas/internal/export"
	"veritas/internal/platform/metrics"
	"veritas/internal/platform/middleware"
	"veritas/internal/score"
	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
	"veritas/pkg/platform/httputil"
)

// ScoreService computes compliance scores.
type ScoreService interface {
	Compute(ctx context.Context, orgID id.OrgID) (*score.Result, error)
}

// ReturnService builds annual return snapshots and field projections.
type ReturnService interface {
	BuildSnapshot(ctx context.Context, orgID id.OrgID, year id.FinancialYear) (*annualreturn.Snapshot, error)
	Fields(ctx context.Context, orgID id.OrgID, year id.FinancialYear, section string) ([]annualreturn.FieldMapping, error)
}

// Handler serves the compliance endpoints.
type Handler struct {
	scores  ScoreService
	returns ReturnService
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(scores ScoreService, returns ReturnService, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{scores: scores, returns: returns, logger: logger, metrics: m}
}

// Register registers the compliance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/orgs/{orgID}", func(r chi.Router) {
		r.Get("/compliance/score", h.handleScore)
		r.Get("/annual-return", h.handleAnnualReturn)
		r.Get("/annual-return/fields", h.handleFields)
	})
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := id.ParseOrgID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.scores.Compute(ctx, orgID)
	if err != nil {
		h.logError(ctx, "score computation failed", orgID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAnnualReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, year, err := h.parseOrgAndYear(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	snapshot, err := h.returns.BuildSnapshot(ctx, orgID, year)
	if err != nil {
		h.logError(ctx, "snapshot build failed", orgID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snapshot)
}

// handleFields serves the exportable field list. The section query param
// narrows to one form section; the format param picks the encoding (json,
// csv, lines).
func (h *Handler) handleFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, year, err := h.parseOrgAndYear(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	encoding, err := export.ParseEncoding(r.URL.Query().Get("format"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	fields, err := h.returns.Fields(ctx, orgID, year, r.URL.Query().Get("section"))
	if err != nil {
		h.logError(ctx, "field export failed", orgID, err)
		httputil.WriteError(w, err)
		return
	}

	// Encode to a buffer first so an encoder failure still yields a clean
	// error response instead of a half-written body.
	var buf bytes.Buffer
	if err := export.Encode(&buf, fields, encoding); err != nil {
		h.logError(ctx, "field encoding failed", orgID, err)
		httputil.WriteError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncrementExport(encoding.String())
	}

	w.Header().Set("Content-Type", encoding.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) parseOrgAndYear(r *http.Request) (id.OrgID, id.FinancialYear, error) {
	orgID, err := id.ParseOrgID(chi.URLParam(r, "orgID"))
	if err != nil {
		return id.OrgID{}, 0, err
	}

	yearParam := r.URL.Query().Get("year")
	if yearParam == "" {
		return orgID, id.FinancialYear(time.Now().Year()), nil
	}
	year, err := id.ParseFinancialYear(yearParam)
	if err != nil {
		return id.OrgID{}, 0, err
	}
	return orgID, year, nil
}

func (h *Handler) logError(ctx context.Context, msg string, orgID id.OrgID, err error) {
	if h.logger == nil {
		return
	}
	if dErrors.HasCode(err, dErrors.CodeInternal) || dErrors.HasCode(err, dErrors.CodeUpstream) {
		h.logger.ErrorContext(ctx, msg,
			"request_id", middleware.GetRequestID(ctx),
			"org_id", orgID,
			"error", err.Error(),
		)
		return
	}
	h.logger.WarnContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"org_id", orgID,
		"error", err.Error(),
	)
}
