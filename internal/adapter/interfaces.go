// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the credential API. Chat front ends
// and the passgen tool use it to reach a running server.
//
// Every call acts on behalf of one chat user: the adapter mints a short
// lived bearer token for that user with the shared sign key. Non-2xx
// responses are mapped onto the sentinel errors in errors.go so callers can
// match them with [errors.Is] and ask [IsTransient] whether a retry may help.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the credential service.
type ServerAdapter interface {
	// Version returns the build information of the server.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Policies lists the password policies the server knows.
	Policies(ctx context.Context) ([]models.PolicyInfo, error)

	// Generate asks for fresh passwords on behalf of req.UserID.
	Generate(ctx context.Context, req models.GenerateRequest) ([]string, error)

	// Save stores secret under account. A taken account yields [ErrConflict].
	Save(ctx context.Context, userID int64, account, secret string) error

	// List returns every credential of userID, oldest first.
	List(ctx context.Context, userID int64) ([]models.Credential, error)

	// Exists reports whether userID already stores account.
	Exists(ctx context.Context, userID int64, account string) (bool, error)

	// DeleteAll removes every credential of userID.
	DeleteAll(ctx context.Context, userID int64) error
}
