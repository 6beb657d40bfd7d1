package service

import (
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/recovery"
	"github.com/MKhiriev/go-bluebook/models"
)

type decryptService struct {
	engine *recovery.Engine

	logger *logger.Logger
}

func NewDecryptService(engine *recovery.Engine, logger *logger.Logger) DecryptService {
	return &decryptService{engine: engine, logger: logger}
}

// Decrypt tries the body as JSON first, then the full battery.
func (s *decryptService) Decrypt(blob string) (models.RecoveredPlaintext, bool) {
	if plain, ok := recovery.AsPlainJSON(blob); ok {
		return plain, true
	}

	plain, ok := s.engine.Recover(blob)
	if ok {
		s.logger.Debug().Str("hypothesis", plain.Hypothesis).Msg("blob recovered")
	}
	return plain, ok
}

func (s *decryptService) Hypotheses() []string {
	return s.engine.Hypotheses()
}
