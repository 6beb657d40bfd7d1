package service

import (
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/MKhiriev/go-bluebook/models"
)

type valueService struct {
	deriver     *token.Deriver
	useFallback bool

	logger *logger.Logger
}

func NewValueService(deriver *token.Deriver, useFallback bool, logger *logger.Logger) ValueService {
	return &valueService{deriver: deriver, useFallback: useFallback, logger: logger}
}

func (s *valueService) Derive(label string) (models.ValueToken, error) {
	if s.useFallback {
		value, fellBack := s.deriver.DeriveOrFallback(label)
		if fellBack {
			s.logger.Warn().Str("label", label).Msg("derivation failed, using fallback token")
		}
		return models.ValueToken{Label: label, Token: value, Fallback: fellBack}, nil
	}

	value, err := s.deriver.Derive(label)
	if err != nil {
		return models.ValueToken{}, err
	}
	return models.ValueToken{Label: label, Token: value}, nil
}

func (s *valueService) Analyze(value string) token.Analysis {
	return s.deriver.Analyze(value)
}
