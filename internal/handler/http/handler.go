package http

import (
	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/service"
)

type Handler struct {
	services *service.Services

	// tokens carries the bearer token sign key and issuer.
	tokens config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   appCfg,
		logger:   logger,
	}
}
