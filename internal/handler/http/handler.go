package http

import (
	"github.com/Lysande2902/Numeros/internal/config"
	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/service"
)

type Handler struct {
	services *service.Services

	environment string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		environment: cfg.Environment,
		logger:      logger,
	}
}
