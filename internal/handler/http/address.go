package http

import (
	"net/http"

	"github.com/MKhiriev/go-diadoc/internal/sandbox"
	"github.com/MKhiriev/go-diadoc/internal/utils"
)

func (h *Handler) parseRussianAddress(w http.ResponseWriter, r *http.Request) {
	parsed, err := sandbox.ParseAddress(r.URL.Query().Get("address"))
	if err != nil {
		writeError(w, r, err, "address not parsed")
		return
	}

	utils.WriteJSON(w, parsed, http.StatusOK)
}
