package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/sandbox"
)

var errorStatusMap = map[error]int{
	sandbox.ErrInvalidCredentials:     http.StatusUnauthorized,
	sandbox.ErrUnknownToken:           http.StatusUnauthorized,
	sandbox.ErrUnsupportedDocument:    http.StatusBadRequest,
	sandbox.ErrInvalidContract:        http.StatusBadRequest,
	sandbox.ErrInvalidMessage:         http.StatusBadRequest,
	sandbox.ErrInvalidPowerOfAttorney: http.StatusBadRequest,
	sandbox.ErrEmptyAddress:           http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnknownClientID:            http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server errors keep
// their details out of the response body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
