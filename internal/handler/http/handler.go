package http

import (
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/sandbox"
)

type Handler struct {
	sandbox *sandbox.Sandbox

	logger *logger.Logger
}

func NewHandler(sandbox *sandbox.Sandbox, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sandbox: sandbox,
		logger:  logger,
	}
}
