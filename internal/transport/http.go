package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/segboard/internal/dashboard"
	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/segment"
)

// Dashboard defines the rendering operations needed by the HTTP surface.
type Dashboard interface {
	Personas(ctx context.Context) ([]string, error)
	View(ctx context.Context, selection []string) (*dashboard.View, error)
}

// Server wires HTTP handlers.
type Server struct {
	dashboard Dashboard
	logger    *slog.Logger
}

// NewServer creates the HTTP router with middleware. All endpoints are
// read-only; a render failure returns an error payload and nothing else.
func NewServer(svc Dashboard, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(requestMiddleware(logger))

	srv := &Server{dashboard: svc, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Get("/api/personas", srv.handlePersonas)
	r.Get("/api/dashboard", srv.handleDashboard)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := s.dashboard.Personas(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"personas": personas})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	selection := parseSelection(r.URL.Query())

	view, err := s.dashboard.View(r.Context(), selection)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// parseSelection reads the personas query parameter. An absent parameter
// returns nil (all personas); a present-but-blank parameter returns an empty
// slice, which the dashboard treats as an empty selection.
func parseSelection(query url.Values) []string {
	values, ok := query["personas"]
	if !ok {
		return nil
	}

	selection := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				selection = append(selection, name)
			}
		}
	}
	return selection
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dataset.ErrDataNotFound):
		writeJSON(w, http.StatusServiceUnavailable, apiError{
			Code:    "DATA_NOT_FOUND",
			Message: "Segmentation dataset not found. Run the upstream analysis to generate it.",
		})
	case errors.Is(err, segment.ErrEmptySelection):
		writeJSON(w, http.StatusUnprocessableEntity, apiError{
			Code:    "EMPTY_SELECTION",
			Message: "Please select at least one persona.",
		})
	default:
		requestID, _ := RequestIDFromContext(r.Context())
		s.logger.Error("render failed", "request_id", requestID, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{
			Code:    "INTERNAL",
			Message: "internal error",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
