// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/airisvision/chromascreen/internal/domain/types"
)

// PanelDependencies defines the interface for panel dataset reads.
type PanelDependencies interface {
	PanelTable(ctx context.Context, panelName string) (types.PanelView, error)
}

// PanelsHandler handles panel dataset requests.
type PanelsHandler struct {
	deps PanelDependencies
}

// NewPanelsHandler creates a new panels handler.
func NewPanelsHandler(deps PanelDependencies) *PanelsHandler {
	return &PanelsHandler{deps: deps}
}

// HandleGetPanel handles GET /panels/{type} requests.
func (h *PanelsHandler) HandleGetPanel(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_panel"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /panels/
	name := strings.TrimPrefix(r.URL.Path, "/panels/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	table, err := h.deps.PanelTable(r.Context(), name)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, table)
}
