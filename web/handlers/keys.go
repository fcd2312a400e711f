// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package handlers

import (
	"net/http"

	"github.com/mdhender/xtab/xmodmap"
)

type keyResponse struct {
	KeyCode   int      `json:"keycode"`
	Syms      []string `json:"syms"`
	Modifiers []string `json:"modifiers"`
}

func newKeyResponse(rec xmodmap.KeyRecord) keyResponse {
	resp := keyResponse{
		KeyCode:   int(rec.Code),
		Syms:      make([]string, 0, len(rec.Syms)),
		Modifiers: make([]string, 0, len(rec.Modifiers)),
	}
	for _, sym := range rec.Syms {
		resp.Syms = append(resp.Syms, sym.String())
	}
	for _, mod := range rec.Modifiers {
		resp.Modifiers = append(resp.Modifiers, mod.String())
	}
	return resp
}

// Key looks up the record owning a keysym: GET /api/keys/{sym}.
// The keysym vocabulary is closed, so a name outside it is a bad
// request; a name inside it that the current layout does not bind is a
// plain not-found.
func (h *Handlers) Key(w http.ResponseWriter, r *http.Request) {
	sym, ok := xmodmap.KeySymFromName(r.PathValue("sym"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown keysym name")
		return
	}

	h.mu.RLock()
	rec, ok := h.keys.GetKey(sym)
	h.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "keysym not bound in current layout")
		return
	}
	writeJSON(w, http.StatusOK, newKeyResponse(rec))
}

// Modifier lists the keycodes bound to a modifier class:
// GET /api/modifiers/{name}. An unbound modifier is an empty list, not
// an error.
func (h *Handlers) Modifier(w http.ResponseWriter, r *http.Request) {
	mod, ok := xmodmap.ModifierFromName(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown modifier name")
		return
	}

	h.mu.RLock()
	codes := h.keys.GetModifier(mod)
	h.mu.RUnlock()

	keycodes := make([]int, 0, len(codes))
	for _, code := range codes {
		keycodes = append(keycodes, int(code))
	}
	writeJSON(w, http.StatusOK, struct {
		Modifier string `json:"modifier"`
		KeyCodes []int  `json:"keycodes"`
	}{mod.String(), keycodes})
}
