package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/engine"
)

// DebugHandler reads engine state between frames.
type DebugHandler struct {
	Loop *engine.Loop
}

func NewDebugHandler(l *engine.Loop) *DebugHandler {
	return &DebugHandler{Loop: l}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/creatures", h.handleCreatures)
	mux.HandleFunc("/debug/tile", h.handleTile)
}

// /debug/creatures: the full roster, dead ones included.
func (h *DebugHandler) handleCreatures(w http.ResponseWriter, r *http.Request) {
	var creatures []domain.Creature
	if err := h.Loop.Do(r.Context(), func(g *engine.Game) {
		creatures = g.CreatureSnapshot()
	}); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, creatures)
}

// /debug/tile?x=4&y=7&z=1: layers, objects and creature on one tile.
func (h *DebugHandler) handleTile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.Atoi(q.Get("x"))
	y, errY := strconv.Atoi(q.Get("y"))
	z, errZ := strconv.Atoi(q.Get("z"))
	if errX != nil || errY != nil || errZ != nil {
		http.Error(w, "x, y and z must be integers", http.StatusBadRequest)
		return
	}

	var (
		report engine.TileReport
		found  bool
	)
	if err := h.Loop.Do(r.Context(), func(g *engine.Game) {
		report, found = g.InspectTile(domain.Position{X: x, Y: y}, enums.Elevation(z))
	}); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if !found {
		http.Error(w, "tile not on the map", http.StatusNotFound)
		return
	}
	writeJSON(w, report)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(data)
}
