package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/utils"
)

// withRequestID tags the request logger with a request id and echoes it in
// the response. An id sent by the client is kept.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(api.RequestIDHeader)
		if requestID == "" {
			requestID = utils.NewUUIDGenerator().Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(api.RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
