package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/models"
)

type generatorService struct {
	generator *generator.Generator

	logger *logger.Logger
}

func NewGeneratorService(g *generator.Generator, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generator: g,
		logger:    logger,
	}
}

// Generate fills a zero length with the policy default and a zero count
// with [generator.DefaultCount]. Generated passwords are never logged.
func (s *generatorService) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	policy, err := generator.ParsePolicy(req.Policy)
	if err != nil {
		return nil, err
	}

	length := req.Length
	if length == 0 {
		bounds, err := generator.BoundsFor(policy)
		if err != nil {
			return nil, err
		}
		length = bounds.Default
	}

	count := req.Count
	if count == 0 {
		count = generator.DefaultCount
	}

	passwords, err := s.generator.GenerateMany(policy, length, count)
	if err != nil {
		return nil, fmt.Errorf("error generating passwords: %w", err)
	}

	s.logger.Debug().
		Int64("user_id", req.UserID).
		Str("policy", string(policy)).
		Int("length", length).
		Int("count", count).
		Msg("passwords generated")

	return passwords, nil
}

func (s *generatorService) Policies(ctx context.Context) []models.PolicyInfo {
	policies := generator.Policies()
	info := make([]models.PolicyInfo, 0, len(policies))
	for _, p := range policies {
		bounds, err := generator.BoundsFor(p)
		if err != nil {
			continue
		}
		info = append(info, models.PolicyInfo{
			Name:          string(p),
			MinLength:     bounds.Min,
			MaxLength:     bounds.Max,
			DefaultLength: bounds.Default,
		})
	}
	return info
}
