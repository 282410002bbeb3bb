package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/usecase"
)

// ArchiveService defines the behavior needed by ArchiveHandler.
type ArchiveService interface {
	Sweep(ctx context.Context, cutoff time.Time) (usecase.SweepResult, error)
	SweepExpired(ctx context.Context) (usecase.SweepResult, error)
}

// ArchiveHandler triggers archival sweeps on demand.
type ArchiveHandler struct {
	archiveUC ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(archiveUC ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveUC: archiveUC}
}

// Sweep runs an archival sweep. Without an explicit cutoff the configured
// retention period applies.
func (h *ArchiveHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req dto.SweepRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}

	var (
		result usecase.SweepResult
		err    error
	)

	if req.Cutoff != nil {
		result, err = h.archiveUC.Sweep(r.Context(), *req.Cutoff)
	} else {
		result, err = h.archiveUC.SweepExpired(r.Context())
	}

	if err != nil {
		// A partial sweep still archived rows; report what happened.
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":  err.Error(),
			"result": dto.SweepFromResult(result),
		})

		return
	}

	writeJSON(w, http.StatusOK, dto.SweepFromResult(result))
}
