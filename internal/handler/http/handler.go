package http

import (
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/service"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/internal/validators"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator
	requests validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		requests: validators.NewProxyRequestValidator(),
		logger:   logger,
	}
}
