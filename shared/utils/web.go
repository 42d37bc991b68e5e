package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/traden-dev/traden/shared/errors"
	"github.com/traden-dev/traden/shared/logger"
)

// ErrorResponse is the JSON error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteErrorAndStatusCode writes err as a JSON error body. Errors without an
// attached status code are treated as store failures: logged with the cause and
// returned as a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	message := "Internal server error"
	statusCode := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		message = e.Message
		statusCode = e.StatusCode
	} else {
		logger.Log.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
