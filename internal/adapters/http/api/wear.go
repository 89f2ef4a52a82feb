package api

import (
	"net/http"

	"github.com/okian/closet/internal/domain/model"
	"github.com/okian/closet/pkg/logger"
)

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// WearHandler handles wear event submissions.
type WearHandler struct {
	deps   WearDependencies
	logger logger.Logger
}

// NewWearHandler creates a new wear handler.
func NewWearHandler(deps WearDependencies, l logger.Logger) *WearHandler {
	return &WearHandler{deps: deps, logger: l}
}

// HandlePostWear handles POST /wear requests. Accepted events answer 202, a
// repeated event_id answers 200 with duplicate=true and a full queue answers
// 429 so the client can retry.
func (h *WearHandler) HandlePostWear(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_wear"
	var e model.WearEvent
	if err := decodeJSON(r, &e); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	duplicate, err := h.deps.SubmitWear(r.Context(), e)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	if duplicate {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted"})
}
