package api

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
)

// defaultSuggestionLimit applies when GET /suggestions has no limit.
const defaultSuggestionLimit = 10

// searchRequest mirrors the OpenAPI schema for POST /search.
type searchRequest struct {
	Query   string                 `json:"query"`
	Filters wardrobe.SearchFilters `json:"filters"`
}

// SearchHandler handles the search and autocomplete endpoints.
type SearchHandler struct {
	deps       SearchDependencies
	maxResults int
	logger     logger.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies, maxResults int, l logger.Logger) *SearchHandler {
	return &SearchHandler{deps: deps, maxResults: maxResults, logger: l}
}

// HandleSearch handles POST /search requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search"
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	items, err := h.deps.Search(r.Context(), req.Query, req.Filters)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleFrequency handles GET /search/frequency?bucket= requests.
func (h *SearchHandler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_frequency"
	raw := r.URL.Query().Get("bucket")
	bucket, ok := wardrobe.ParseFrequency(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: unknown frequency bucket %q", ErrBadRequest, raw))
		return
	}
	items, err := h.deps.SearchByFrequency(r.Context(), bucket)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleValue handles GET /search/value?order=best|worst requests. The order
// defaults to best.
func (h *SearchHandler) HandleValue(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_value"
	raw := r.URL.Query().Get("order")
	order := engine.ValueBest
	if raw != "" {
		var ok bool
		if order, ok = engine.ParseValueOrder(raw); !ok {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: unknown value order %q", ErrBadRequest, raw))
			return
		}
	}
	items, err := h.deps.SearchByValue(r.Context(), order)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleWeather handles GET /search/weather requests.
func (h *SearchHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_weather"
	wc, err := parseWeather(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	items, err := h.deps.SearchByWeather(r.Context(), wc)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleSuggestions handles GET /suggestions?q=&limit= requests.
func (h *SearchHandler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	const op = "api.suggestions"
	limit, err := parseLimit(r, defaultSuggestionLimit, h.maxResults)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	out, err := h.deps.GetSuggestions(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// parseWeather reads temperature, conditions and season from the query.
// All three are required; season is matched against wardrobe.Seasons
// case-insensitively.
func parseWeather(r *http.Request) (wardrobe.WeatherConditions, error) {
	q := r.URL.Query()
	temp, err := strconv.ParseFloat(q.Get("temperature"), 64)
	if err != nil {
		return wardrobe.WeatherConditions{}, fmt.Errorf("%w: temperature must be a number, got %q", ErrBadRequest, q.Get("temperature"))
	}
	cond, ok := wardrobe.ParseConditions(q.Get("conditions"))
	if !ok {
		return wardrobe.WeatherConditions{}, fmt.Errorf("%w: unknown conditions %q", ErrBadRequest, q.Get("conditions"))
	}
	season, ok := canonicalSeason(q.Get("season"))
	if !ok {
		return wardrobe.WeatherConditions{}, fmt.Errorf("%w: unknown season %q", ErrBadRequest, q.Get("season"))
	}
	return wardrobe.WeatherConditions{Temperature: temp, Conditions: cond, Season: season}, nil
}

func canonicalSeason(s string) (string, bool) {
	s = strings.TrimSpace(s)
	i := slices.IndexFunc(wardrobe.Seasons, func(season string) bool { return strings.EqualFold(season, s) })
	if i < 0 {
		return "", false
	}
	return wardrobe.Seasons[i], true
}
