package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/utils"
	"github.com/MKhiriev/go-diadoc/models"
)

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var msg models.MessageToPost
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	login, _ := utils.GetLoginFromContext(r.Context())
	log.Debug().
		Str("login", login).
		Str("from_box_id", msg.FromBoxId).
		Str("to_box_id", msg.ToBoxId).
		Msg("posting message")

	posted, err := h.sandbox.PostMessage(msg)
	if err != nil {
		writeError(w, r, err, "message rejected")
		return
	}

	utils.WriteJSON(w, posted, http.StatusOK)
}
