package api

import (
	"fmt"
	"net/http"

	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
)

// defaultUnderutilizedLimit applies when GET /underutilized has no limit.
const defaultUnderutilizedLimit = 10

// AnalysisHandler handles recommendations and wardrobe analysis.
type AnalysisHandler struct {
	deps       AnalysisDependencies
	maxResults int
	logger     logger.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(deps AnalysisDependencies, maxResults int, l logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{deps: deps, maxResults: maxResults, logger: l}
}

// HandleRecommendations handles POST /recommendations requests. Both fields
// of the body are optional.
func (h *AnalysisHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommendations"
	var oc engine.OutfitContext
	if err := decodeJSON(r, &oc); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if oc.Weather != nil {
		if err := normalizeWeather(oc.Weather); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	outfits, err := h.deps.GenerateRecommendations(r.Context(), oc)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(outfits))
}

// HandleUnderutilized handles GET /underutilized?limit=N requests.
func (h *AnalysisHandler) HandleUnderutilized(w http.ResponseWriter, r *http.Request) {
	const op = "api.underutilized"
	limit, err := parseLimit(r, defaultUnderutilizedLimit, h.maxResults)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	items, err := h.deps.FindUnderutilizedItems(r.Context(), limit)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(items))
}

// HandleGaps handles GET /gaps requests.
func (h *AnalysisHandler) HandleGaps(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.AnalyzeWardrobeGaps(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, "api.gaps", err)
		return
	}
	report.MissingCategories = orEmpty(report.MissingCategories)
	report.ColorGaps = orEmpty(report.ColorGaps)
	report.StyleGaps = orEmpty(report.StyleGaps)
	report.SeasonalGaps = orEmpty(report.SeasonalGaps)
	writeJSON(w, http.StatusOK, report)
}

// normalizeWeather canonicalizes the conditions and season of a JSON weather
// object in place.
func normalizeWeather(wc *wardrobe.WeatherConditions) error {
	cond, ok := wardrobe.ParseConditions(string(wc.Conditions))
	if !ok {
		return fmt.Errorf("%w: unknown conditions %q", ErrBadRequest, wc.Conditions)
	}
	season, ok := canonicalSeason(wc.Season)
	if !ok {
		return fmt.Errorf("%w: unknown season %q", ErrBadRequest, wc.Season)
	}
	wc.Conditions = cond
	wc.Season = season
	return nil
}
