package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/veloz/fondos/internal/adapter/http/dto"
	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/infrastructure/metrics"
	"github.com/veloz/fondos/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferResult, error)
}

// TransferHandler handles transfer HTTP requests.
type TransferHandler struct {
	transferUC TransferService
	metrics    *metrics.Metrics
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService, m *metrics.Metrics) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, metrics: m}
}

// Create executes a transfer between two accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()
	result, err := h.transferUC.Transfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if h.metrics != nil {
			h.metrics.TransferErrors.WithLabelValues(transferErrorType(err)).Inc()
		}
		writeError(w, mapDomainError(err), "transfer failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TransfersCreated.Inc()
		h.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		EgresoID:  result.EgresoID,
		IngresoID: result.IngresoID,
	})
}

func transferErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "internal"
	}
}
