// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"
	"time"
)

// Snapshots lists stored snapshots, newest first.
func (h *Handlers) Snapshots(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusNotImplemented, "snapshot store not configured")
		return
	}
	snapshots, err := h.store.ListSnapshots(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// SnapshotCapture freezes the current tables into the store:
// POST /api/snapshots. Both kinds are captured with the same timestamp.
func (h *Handlers) SnapshotCapture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.store == nil {
		writeError(w, http.StatusNotImplemented, "snapshot store not configured")
		return
	}

	h.mu.RLock()
	entries := h.resources.Entries()
	records := h.keys.Records()
	h.mu.RUnlock()

	takenAt := time.Now().UTC()
	resourceID, err := h.store.SaveResources(r.Context(), takenAt, entries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save resources")
		return
	}
	keymapID, err := h.store.SaveKeymap(r.Context(), takenAt, records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save keymap")
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		ResourceSnapshot int64 `json:"resource_snapshot"`
		KeymapSnapshot   int64 `json:"keymap_snapshot"`
	}{resourceID, keymapID})
}
