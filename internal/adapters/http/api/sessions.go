// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/airisvision/chromascreen/internal/domain/types"
)

// SessionDependencies defines the interface for session operations.
type SessionDependencies interface {
	StartSession(ctx context.Context, panelName string) (types.SessionView, error)
	SubmitArrangement(ctx context.Context, sessionID string, order []string) (types.ResultView, error)
}

// SessionsHandler handles session requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// HandleStartSession handles POST /sessions requests.
func (h *SessionsHandler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	const op = "api.start_session"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	view, err := h.deps.StartSession(r.Context(), req.Panel)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// HandleArrangement handles POST /sessions/{id}/arrangement requests.
func (h *SessionsHandler) HandleArrangement(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_arrangement"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /sessions/
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	id, rest, ok := strings.Cut(path, "/")
	if !ok || id == "" || rest != "arrangement" {
		http.NotFound(w, r)
		return
	}
	var req arrangementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.SubmitArrangement(r.Context(), id, req.Order)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
