package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veloz/fondos/internal/adapter/http/dto"
	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/infrastructure/metrics"
	"github.com/veloz/fondos/internal/usecase"
)

// MovementService defines the behavior needed by MovementHandler.
type MovementService interface {
	RegisterMovement(ctx context.Context, input usecase.RegisterMovementInput) (int64, error)
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]*domain.Movement, error)
}

// MovementHandler handles movement HTTP requests.
type MovementHandler struct {
	movementUC MovementService
	metrics    *metrics.Metrics
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementUC MovementService, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movementUC: movementUC, metrics: m}
}

// Create registers a movement.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.movementUC.RegisterMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register movement", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.MovementsRecorded.WithLabelValues(req.Tipo).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.CreatedResponse{ID: id})
}

// List lists movements matching the query filters.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := movementFilterFromQuery(r)

	movements, err := h.movementUC.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// ListByAccount lists the movements of one account.
func (h *MovementHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	filter := movementFilterFromQuery(r)
	filter.AccountID = &id

	movements, err := h.movementUC.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

func movementFilterFromQuery(r *http.Request) domain.MovementFilter {
	filter := domain.MovementFilter{
		AccountID: parseInt64Query(r, "cuenta_id"),
		DateFrom:  parseDateQuery(r, "desde"),
		DateTo:    parseDateQuery(r, "hasta"),
		Search:    r.URL.Query().Get("busqueda"),
		Limit:     parseIntQuery(r, "limit", 0),
	}

	if tipo := r.URL.Query().Get("tipo"); tipo != "" && tipo != "todos" {
		t := domain.MovementType(tipo)
		filter.Type = &t
	}

	return filter
}
