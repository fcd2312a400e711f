// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"

	"github.com/mdhender/xtab/xmodmap"
)

// Resource answers a point lookup against the live resource table:
// GET /api/resource?component=dwm&property=color1
func (h *Handlers) Resource(w http.ResponseWriter, r *http.Request) {
	component := r.URL.Query().Get("component")
	property := r.URL.Query().Get("property")
	if component == "" || property == "" {
		writeError(w, http.StatusBadRequest, "component and property are required")
		return
	}

	h.mu.RLock()
	value, ok := h.resources.Query(component, property)
	h.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Component string `json:"component"`
		Property  string `json:"property"`
		Value     string `json:"value"`
	}{component, property, value})
}

// Resources dumps the whole live resource table, sorted.
func (h *Handlers) Resources(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	entries := h.resources.Entries()
	h.mu.RUnlock()

	writeJSON(w, http.StatusOK, entries)
}

// Refresh re-invokes both dump utilities and replaces the tables
// wholesale. A failed invocation leaves the prior tables in place and
// reports the failure; there is no partial refresh.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resources.Read(); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	keys, err := xmodmap.New()
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.keys = keys

	writeJSON(w, http.StatusOK, struct {
		Resources int `json:"resources"`
		Keycodes  int `json:"keycodes"`
	}{h.resources.Len(), h.keys.Len()})
}
