package server

import (
	"encoding/json"
	"net/http"
)

var jsonHeader = []string{"application/json; charset=utf-8"}

// errorResponse pairs a status code with a precomputed body so error
// paths never allocate or marshal.
type errorResponse struct {
	code int
	body []byte
}

var (
	errInvalidRequest = errorResponse{http.StatusBadRequest, []byte(`{"error":"invalid request body"}`)}
	errUnknownPreset  = errorResponse{http.StatusBadRequest, []byte(`{"error":"unknown preset"}`)}
	errEmptyAlphabet  = errorResponse{http.StatusBadRequest, []byte(`{"error":"empty alphabet"}`)}
	errNegativeValue  = errorResponse{http.StatusBadRequest, []byte(`{"error":"length and count must not be negative"}`)}
	errMissingKey     = errorResponse{http.StatusBadRequest, []byte(`{"error":"key or keys required"}`)}
	errInternal       = errorResponse{http.StatusInternalServerError, []byte(`{"error":"internal error"}`)}
)

func writeError(w http.ResponseWriter, e errorResponse) {
	h := w.Header()
	h["Content-Type"] = jsonHeader
	w.WriteHeader(e.code)
	_, _ = w.Write(e.body)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	h := w.Header()
	h["Content-Type"] = jsonHeader
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
