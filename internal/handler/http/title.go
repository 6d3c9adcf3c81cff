package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/utils"
	"github.com/MKhiriev/go-diadoc/models"
)

func (h *Handler) generateTitleXml(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	titleIndex, err := strconv.Atoi(query.Get("titleIndex"))
	if err != nil {
		log.Err(err).Msg("invalid titleIndex")
		http.Error(w, "invalid titleIndex", http.StatusBadRequest)
		return
	}

	contract, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	docType := models.DocumentType{
		TypeNamedId: query.Get("documentTypeNamedId"),
		Function:    query.Get("documentFunction"),
		Version:     query.Get("documentVersion"),
	}
	file, err := h.sandbox.GenerateTitle(query.Get("boxId"), docType, titleIndex, contract)
	if err != nil {
		writeError(w, r, err, "title generation failed")
		return
	}

	log.Debug().Str("file_name", file.FileName).Int("size", len(file.Content)).Msg("title generated")
	utils.WriteAttachment(w, file.FileName, "application/xml", file.Content)
}
