package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	internal_errors "github.com/traden-dev/traden/shared/errors"
)

func parseIdParam(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// redirectWithError redirects to targetURL carrying the message in the
// "error" query param, which the GET handlers surface on the page.
func redirectWithError(w http.ResponseWriter, r *http.Request, targetURL, errMsg string) {
	http.Redirect(w, r, targetURL+"?error="+url.QueryEscape(errMsg), http.StatusSeeOther)
}

// statusCodeOf extracts the backend status code from an error, defaulting to 500.
func statusCodeOf(err error) int {
	if apiErr, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
