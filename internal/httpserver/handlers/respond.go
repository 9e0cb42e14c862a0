package handlers

import (
	"encoding/json"
	"net/http"
)

// Every response is a flat {ok, ...} envelope; failures carry a user-facing
// message that clients surface verbatim.

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondOK(w http.ResponseWriter, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["ok"] = true
	respondJSON(w, http.StatusOK, payload)
}

func respondErr(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"ok": false, "message": message})
}
