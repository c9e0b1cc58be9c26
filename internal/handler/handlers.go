package handler

import (
	"errors"

	"github.com/MKhiriev/linkboard/internal/config"
	"github.com/MKhiriev/linkboard/internal/handler/http"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers were created: no server address configured")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
