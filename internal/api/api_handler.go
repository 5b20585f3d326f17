package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"nc-news/internal/api/shared"
	"nc-news/internal/apperr"
)

//go:embed endpoints.json
var endpointsManifest []byte

// APIHandler serves the endpoint manifest.
type APIHandler struct{}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Describe handles GET /api, returning the embedded endpoint manifest.
func (h *APIHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var endpoints map[string]any
	if err := json.Unmarshal(endpointsManifest, &endpoints); err != nil {
		shared.RespondWithAppError(w, r, apperr.Internal(err))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"endpoints": endpoints})
}
