package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trusttrack/assist/internal/apperrors"
	"github.com/trusttrack/assist/internal/assemble"
	"github.com/trusttrack/assist/internal/classify"
	"github.com/trusttrack/assist/internal/directory"
	"github.com/trusttrack/assist/internal/logger"
	"github.com/trusttrack/assist/internal/models"
	"github.com/trusttrack/assist/internal/rank"
)

// Handler handles HTTP requests for the API
type Handler struct {
	classifier classify.Classifier
	ranker     *rank.Ranker
	assembler  *assemble.Assembler
	dir        *directory.Directory
	version    string
	buildTime  string
	gitCommit  string
	startTime  time.Time
}

// NewHandler creates a new API handler
func NewHandler(classifier classify.Classifier, ranker *rank.Ranker, assembler *assemble.Assembler, dir *directory.Directory, version, buildTime, gitCommit string) *Handler {
	return &Handler{
		classifier: classifier,
		ranker:     ranker,
		assembler:  assembler,
		dir:        dir,
		version:    version,
		buildTime:  buildTime,
		gitCommit:  gitCommit,
		startTime:  time.Now(),
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {
		// Health check endpoints
		r.Get("/health", h.healthHandler)
		r.Get("/health/ready", h.readinessHandler)
		r.Get("/health/live", h.livenessHandler)

		// API endpoints
		r.Post("/assist", h.assistHandler)
		r.Get("/services", h.getServicesHandler)
		r.Get("/services/categories", h.getCategoriesHandler)

		// System info
		r.Get("/version", h.versionHandler)
	})

	// Root health check
	r.Get("/health", h.healthHandler)
}

// assistRequest is the inbound payload for POST /v1/assist.
type assistRequest struct {
	Query    string           `json:"query"`
	Location *models.Location `json:"location,omitempty"`
	History  []models.Turn    `json:"history,omitempty"`
}

// assistHandler runs the full pipeline for one query: classify, resolve and
// rank services, assemble the structured response.
func (h *Handler) assistHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	query := models.NewQuery(req.Query, req.Location, req.History)
	if err := query.Validate(); err != nil {
		if errors.Is(err, apperrors.ErrInvalidQuery) {
			h.writeErrorResponse(w, r, http.StatusBadRequest, "query text is required")
			return
		}
		h.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cls, err := h.classifier.Classify(ctx, query)
	if err != nil {
		// The chain falls back internally; an error here means even the
		// local strategy could not produce a verdict.
		logger.WithContext(ctx).Error("Classification failed", "error", err, "query_id", query.ID)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	var ranked []models.RankedService
	if cls.NeedsServices {
		ranked = h.ranker.Rank(cls.ServiceType, query.Text, query.Location)
	}

	response := h.assembler.Assemble(query, cls, ranked)
	h.writeJSONResponse(w, http.StatusOK, response)
}

// getServicesHandler lists directory entries, optionally filtered by category.
func (h *Handler) getServicesHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")

	var entries []models.ServiceEntry
	if raw == "" {
		entries = h.dir.All()
	} else {
		category, ok := models.ParseCategory(raw)
		if !ok {
			h.writeErrorResponse(w, r, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		entries = h.dir.EntriesFor(category)
	}

	response := map[string]interface{}{
		"data":      entries,
		"count":     len(entries),
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	h.writeJSONResponse(w, http.StatusOK, response)
}

// getCategoriesHandler lists the categories the directory serves.
func (h *Handler) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"data":      models.DirectoryCategories,
		"count":     len(models.DirectoryCategories),
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	h.writeJSONResponse(w, http.StatusOK, response)
}

// healthHandler provides basic health check
func (h *Handler) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   h.version,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// readinessHandler checks if the application is ready to serve traffic
func (h *Handler) readinessHandler(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"directory": "ok",
	}

	statusCode := http.StatusOK
	if len(h.dir.All()) == 0 {
		checks["directory"] = "error: empty catalog"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	}

	h.writeJSONResponse(w, statusCode, response)
}

// livenessHandler checks if the application is alive
func (h *Handler) livenessHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startTime).String(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// versionHandler returns version information
func (h *Handler) versionHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"version":    h.version,
		"build_time": h.buildTime,
		"git_commit": h.gitCommit,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes a standardized error response
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	response := ErrorResponse{
		Error:     http.StatusText(statusCode),
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: r.Header.Get("X-Request-ID"),
	}

	h.writeJSONResponse(w, statusCode, response)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}
