package handler

import (
	"net/http"

	"github.com/traden-dev/traden/shared/api"
)

// Health is the liveness endpoint served at the API root.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.MessageResponse{Message: "Forum API is running"})
}
