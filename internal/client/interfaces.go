package client

import (
	"context"

	"github.com/MKhiriev/go-pass-bot/models"
)

// PasswordSource produces passwords and describes the policies it knows.
type PasswordSource interface {
	Generate(ctx context.Context, req models.GenerateRequest) ([]string, error)
	Policies(ctx context.Context) ([]models.PolicyInfo, error)
}
