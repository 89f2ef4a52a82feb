package api

import (
	"net/http"

	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
)

// defaultMatchLimit applies when GET /items/{id}/matches has no limit.
const defaultMatchLimit = 5

// ItemsHandler handles the collection endpoints.
type ItemsHandler struct {
	deps       ItemDependencies
	maxResults int
	logger     logger.Logger
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(deps ItemDependencies, maxResults int, l logger.Logger) *ItemsHandler {
	return &ItemsHandler{deps: deps, maxResults: maxResults, logger: l}
}

// HandleList handles GET /items requests.
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Items(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, "api.list_items", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleCreate handles POST /items requests. An empty id is assigned by the
// service; an existing id replaces that item.
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_item"
	var item wardrobe.Item
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := h.deps.AddItem(r.Context(), item)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleGet handles GET /items/{id} requests.
func (h *ItemsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.deps.Item(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, "api.get_item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// HandleUpdate handles PATCH /items/{id} requests.
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_item"
	var patch wardrobe.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	updated, err := h.deps.UpdateItem(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /items/{id} requests.
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.RemoveItem(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), w, h.logger, "api.delete_item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMatches handles GET /items/{id}/matches?limit=N requests.
func (h *ItemsHandler) HandleMatches(w http.ResponseWriter, r *http.Request) {
	const op = "api.matches"
	limit, err := parseLimit(r, defaultMatchLimit, h.maxResults)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	matches, err := h.deps.FindMatchingPieces(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(matches))
}
