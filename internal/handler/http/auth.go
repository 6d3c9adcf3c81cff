package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-diadoc/internal/logger"
)

type passwordCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// authenticate issues a token for login/password credentials. The token is
// returned as the plain response body.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if authType := r.URL.Query().Get("type"); authType != "password" {
		log.Error().Str("type", authType).Msg("unsupported authentication type")
		http.Error(w, "unsupported authentication type", http.StatusBadRequest)
		return
	}

	var creds passwordCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.sandbox.Authenticate(creds.Login, creds.Password)
	if err != nil {
		writeError(w, r, err, "authentication failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(token))
}
