package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-diadoc/internal/config"
	"github.com/MKhiriev/go-diadoc/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds the sandbox address right away so that a busy port is
// reported before anything is served.
func NewServer(handler http.Handler, cfg config.Sandbox, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.Address == "" {
		return nil, errNoAddress
	}

	httpServer, err := newHTTPServer(handler, cfg.Address, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.httpServer.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-serveErr:
		return err
	}
}
