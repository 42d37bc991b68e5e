package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/traden-dev/traden/backend/internal/service"
	"github.com/traden-dev/traden/shared/logger"
)

type Handler struct {
	thread service.ThreadService
	reply  service.ReplyService
}

func New(thread service.ThreadService, reply service.ReplyService) *Handler {
	return &Handler{thread, reply}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// parseIntParam parses an integer URL parameter and returns a meaningful error.
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, &invalidParamError{paramName}
	}
	return val, nil
}

type invalidParamError struct {
	name string
}

func (e *invalidParamError) Error() string {
	return "invalid " + e.name + ": must be an integer"
}
