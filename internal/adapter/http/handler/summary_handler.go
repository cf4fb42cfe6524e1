package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/veloz/fondos/internal/adapter/http/dto"
	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	MonthlyBalance(ctx context.Context, year int) ([]*domain.MonthlySummary, usecase.MonthlyTotals, error)
	BalanceByAccount(ctx context.Context, from, to *time.Time) ([]*domain.AccountSummary, error)
	CheckConsistency(ctx context.Context) (bool, []*domain.AccountDrift, error)
}

// SummaryHandler handles balance summary HTTP requests.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

// Monthly returns ingreso/egreso totals per month, optionally filtered by year.
func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year := parseIntQuery(r, "anio", 0)

	rows, totals, err := h.summaryUC.MonthlyBalance(r.Context(), year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute monthly balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlyBalanceFromDomain(rows, totals))
}

// ByAccount returns per-account totals within an optional date range.
func (h *SummaryHandler) ByAccount(w http.ResponseWriter, r *http.Request) {
	from := parseDateQuery(r, "desde")
	to := parseDateQuery(r, "hasta")

	rows, err := h.summaryUC.BalanceByAccount(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute account balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountSummariesFromDomain(rows))
}

// Consistency reports accounts whose stored balance drifts from the movement log.
func (h *SummaryHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	consistent, drifts, err := h.summaryUC.CheckConsistency(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check ledger consistency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromDomain(consistent, drifts))
}
