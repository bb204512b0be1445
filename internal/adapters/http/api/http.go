// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/airisvision/chromascreen/internal/adapters/repository"
	service "github.com/airisvision/chromascreen/internal/app"
	"github.com/airisvision/chromascreen/internal/domain/panel"
	"github.com/airisvision/chromascreen/internal/domain/score"
	"github.com/airisvision/chromascreen/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// StartSession deals a new shuffled session for the named panel.
	StartSession(ctx context.Context, panelName string) (types.SessionView, error)

	// SubmitArrangement scores a completed arrangement for an active session.
	SubmitArrangement(ctx context.Context, sessionID string, order []string) (types.ResultView, error)

	// PanelTable returns the versioned dataset for the named panel.
	PanelTable(ctx context.Context, panelName string) (types.PanelView, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	sessionsHandler *SessionsHandler
	panelsHandler   *PanelsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		sessionsHandler: NewSessionsHandler(deps),
		panelsHandler:   NewPanelsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandleStartSession, "sessions"))
	mux.HandleFunc("/sessions/", MetricsMiddleware(s.sessionsHandler.HandleArrangement, "arrangement"))
	mux.HandleFunc("/panels/", MetricsMiddleware(s.panelsHandler.HandleGetPanel, "panels"))
}

// sessionRequest mirrors the schema for POST /sessions.
type sessionRequest struct {
	Panel string `json:"panel"`
}

func (s sessionRequest) validate() error {
	if strings.TrimSpace(s.Panel) == "" {
		return errors.New("missing panel")
	}
	return nil
}

// arrangementRequest mirrors the schema for POST /sessions/{id}/arrangement.
type arrangementRequest struct {
	Order []string `json:"order"`
}

func (a arrangementRequest) validate() error {
	if len(a.Order) == 0 {
		return errors.New("missing order")
	}
	for _, id := range a.Order {
		if strings.TrimSpace(id) == "" {
			return errors.New("blank cap id in order")
		}
	}
	return nil
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

// writeDomainError translates upstream errors to HTTP responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, panel.ErrUnknownPanel):
		writeError(w, http.StatusNotFound, "unknown_panel", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrAlreadyScored):
		writeError(w, http.StatusConflict, "already_scored", err)
	case errors.Is(err, score.ErrInvalidSequence):
		writeError(w, http.StatusBadRequest, "invalid_sequence", err)
	case errors.Is(err, repository.ErrCapacity):
		writeError(w, http.StatusTooManyRequests, "capacity", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
