// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/closet/internal/adapters/mq/queue"
	"github.com/okian/closet/internal/adapters/repository"
	service "github.com/okian/closet/internal/app"
	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/model"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
)

// DefaultMaxResults caps limit parameters when no WithMaxResults is given.
const DefaultMaxResults = 100

// ItemDependencies covers the collection endpoints.
type ItemDependencies interface {
	Items(ctx context.Context) ([]wardrobe.Item, error)
	Item(ctx context.Context, id string) (wardrobe.Item, error)
	AddItem(ctx context.Context, item wardrobe.Item) (wardrobe.Item, error)
	UpdateItem(ctx context.Context, id string, patch wardrobe.ItemPatch) (wardrobe.Item, error)
	RemoveItem(ctx context.Context, id string) error
	FindMatchingPieces(ctx context.Context, id string, limit int) ([]engine.Match, error)
}

// SearchDependencies covers the search and autocomplete endpoints.
type SearchDependencies interface {
	Search(ctx context.Context, query string, filters wardrobe.SearchFilters) ([]wardrobe.Item, error)
	SearchByFrequency(ctx context.Context, f wardrobe.Frequency) ([]wardrobe.Item, error)
	SearchByValue(ctx context.Context, order engine.ValueOrder) ([]wardrobe.Item, error)
	SearchByWeather(ctx context.Context, wc wardrobe.WeatherConditions) ([]wardrobe.Item, error)
	GetSuggestions(ctx context.Context, partial string, limit int) ([]string, error)
}

// AnalysisDependencies covers recommendations and wardrobe analysis.
type AnalysisDependencies interface {
	GenerateRecommendations(ctx context.Context, oc engine.OutfitContext) ([]engine.Outfit, error)
	FindUnderutilizedItems(ctx context.Context, limit int) ([]wardrobe.Item, error)
	AnalyzeWardrobeGaps(ctx context.Context) (engine.GapReport, error)
}

// WearDependencies accepts wear events for asynchronous processing.
type WearDependencies interface {
	SubmitWear(ctx context.Context, e model.WearEvent) (duplicate bool, err error)
}

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	ItemDependencies
	SearchDependencies
	AnalysisDependencies
	WearDependencies
	StatsProvider
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	itemsHandler    *ItemsHandler
	searchHandler   *SearchHandler
	analysisHandler *AnalysisHandler
	wearHandler     *WearHandler
}

type serverConfig struct {
	maxResults int
	logger     logger.Logger
}

// Option configures a Server.
type Option func(*serverConfig)

// WithMaxResults caps the limit query parameter. Non-positive values are ignored.
func WithMaxResults(n int) Option {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// WithLogger sets the logger used for unexpected handler errors.
func WithLogger(l logger.Logger) Option {
	return func(c *serverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	cfg := serverConfig{maxResults: DefaultMaxResults, logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		itemsHandler:    NewItemsHandler(deps, cfg.maxResults, cfg.logger),
		searchHandler:   NewSearchHandler(deps, cfg.maxResults, cfg.logger),
		analysisHandler: NewAnalysisHandler(deps, cfg.maxResults, cfg.logger),
		wearHandler:     NewWearHandler(deps, cfg.logger),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /items", MetricsMiddleware(s.itemsHandler.HandleList, "items"))
	mux.HandleFunc("POST /items", MetricsMiddleware(s.itemsHandler.HandleCreate, "items"))
	mux.HandleFunc("GET /items/{id}", MetricsMiddleware(s.itemsHandler.HandleGet, "item"))
	mux.HandleFunc("PATCH /items/{id}", MetricsMiddleware(s.itemsHandler.HandleUpdate, "item"))
	mux.HandleFunc("DELETE /items/{id}", MetricsMiddleware(s.itemsHandler.HandleDelete, "item"))
	mux.HandleFunc("GET /items/{id}/matches", MetricsMiddleware(s.itemsHandler.HandleMatches, "matches"))

	mux.HandleFunc("POST /search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("GET /search/frequency", MetricsMiddleware(s.searchHandler.HandleFrequency, "search_frequency"))
	mux.HandleFunc("GET /search/value", MetricsMiddleware(s.searchHandler.HandleValue, "search_value"))
	mux.HandleFunc("GET /search/weather", MetricsMiddleware(s.searchHandler.HandleWeather, "search_weather"))
	mux.HandleFunc("GET /suggestions", MetricsMiddleware(s.searchHandler.HandleSuggestions, "suggestions"))

	mux.HandleFunc("POST /recommendations", MetricsMiddleware(s.analysisHandler.HandleRecommendations, "recommendations"))
	mux.HandleFunc("GET /underutilized", MetricsMiddleware(s.analysisHandler.HandleUnderutilized, "underutilized"))
	mux.HandleFunc("GET /gaps", MetricsMiddleware(s.analysisHandler.HandleGaps, "gaps"))

	mux.HandleFunc("POST /wear", MetricsMiddleware(s.wearHandler.HandlePostWear, "wear"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service and adapter errors onto HTTP statuses.
// Anything unrecognized is logged and reported as a 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, l logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownItem), errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidEvent),
		errors.Is(err, repository.ErrInvalidItem),
		errors.Is(err, wardrobe.ErrNegativePrice),
		errors.Is(err, wardrobe.ErrNegativeWearCount):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, queue.ErrFull):
		writeError(w, http.StatusTooManyRequests, "backpressure", fmt.Errorf("%w: %w", ErrBackpressure, err))
	case errors.Is(err, queue.ErrClosed), errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	default:
		l.Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// decodeJSON reads a single JSON document from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrBadRequest, err)
	}
	return nil
}

// parseLimit reads the limit query parameter. A missing value yields def and
// values above maxLimit are clamped.
func parseLimit(r *http.Request, def, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return min(def, maxLimit), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer, got %q", ErrBadRequest, raw)
	}
	return min(n, maxLimit), nil
}

// orEmpty keeps list responses as JSON arrays rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
