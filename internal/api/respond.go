package api

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeErrorDetail includes err's text only when debug is on.
func writeErrorDetail(w http.ResponseWriter, status int, msg string, err error, debug bool) {
	resp := errorResponse{Error: msg}
	if debug && err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
