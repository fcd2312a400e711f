// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package handlers implements the JSON API of the query server. The
// facades themselves are single-threaded by design, so the Handlers
// struct wraps them in a single writer lock: Refresh rebuilds the
// tables exclusively, every query takes the read side.
package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/mdhender/xtab/web/auth"
	"github.com/mdhender/xtab/xmodmap"
	"github.com/mdhender/xtab/xrdb"

	store "github.com/mdhender/xtab/stores/sqlite"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	mu        sync.RWMutex
	resources *xrdb.Xrdb
	keys      *xmodmap.KeyTable
	store     *store.Store
	sessions  *auth.SessionStore
}

// New creates a new Handlers over already-built facades. The store may
// be nil when the server runs without snapshot support.
func New(resources *xrdb.Xrdb, keys *xmodmap.KeyTable, s *store.Store, sessions *auth.SessionStore) *Handlers {
	return &Handlers{resources: resources, keys: keys, store: s, sessions: sessions}
}

// RequireAuth rejects requests without a live session. The API answers
// JSON, so the rejection is a 401, not a redirect.
func (h *Handlers) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.GetSessionFromRequest(r, h.sessions) == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
