package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewHandler wires the API routes onto an httprouter mux.
func NewHandler(app *App) http.Handler {
	rt := httprouter.New()
	rt.HandlerFunc(http.MethodPost, "/api/generate", app.Generate)
	rt.HandlerFunc(http.MethodPost, "/api/verify", app.Verify)
	rt.HandlerFunc(http.MethodGet, "/api/presets", app.Presets)
	rt.HandlerFunc(http.MethodGet, "/api/health", app.Health)
	return rt
}
