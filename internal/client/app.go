// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/models"
)

// App prints passwords from a [PasswordSource].
type App struct {
	source PasswordSource
	out    io.Writer
	styles styles

	copyToClipboard func(string) error

	logger *logger.Logger
}

// Option configures an [App].
type Option func(*App)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		a.copyToClipboard = write
	}
}

func NewApp(source PasswordSource, out io.Writer, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		source:          source,
		out:             out,
		styles:          newStyles(out),
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run lists policies or generates passwords, depending on cfg.
func (a *App) Run(ctx context.Context, cfg Config) error {
	if cfg.ListPolicies {
		return a.printPolicies(ctx)
	}
	return a.generate(ctx, cfg)
}

func (a *App) generate(ctx context.Context, cfg Config) error {
	passwords, err := a.source.Generate(ctx, models.GenerateRequest{
		Policy: cfg.Policy,
		Length: cfg.Length,
		Count:  cfg.Count,
	})
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return ErrNoPasswords
	}

	a.logger.Debug().Str("policy", cfg.Policy).Int("count", len(passwords)).Msg("passwords generated")

	var b strings.Builder
	b.WriteString(a.styles.title.Render(fmt.Sprintf("%s passwords", strings.ToLower(strings.TrimSpace(cfg.Policy)))))
	b.WriteByte('\n')
	for i, pw := range passwords {
		b.WriteString(a.styles.index.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteByte(' ')
		b.WriteString(a.styles.password.Render(pw))
		b.WriteByte('\n')
	}

	if cfg.Copy {
		if err = a.copyToClipboard(passwords[0]); err != nil {
			return fmt.Errorf("%w: %w", ErrClipboard, err)
		}
		b.WriteString(a.styles.hint.Render("password 1 copied to clipboard"))
		b.WriteByte('\n')
	}

	_, err = io.WriteString(a.out, b.String())
	return err
}

func (a *App) printPolicies(ctx context.Context) error {
	policies, err := a.source.Policies(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(a.styles.title.Render("policies"))
	b.WriteByte('\n')
	for _, p := range policies {
		fmt.Fprintf(&b, "  %-8s %s\n", p.Name,
			a.styles.hint.Render(fmt.Sprintf("length %d-%d, default %d", p.MinLength, p.MaxLength, p.DefaultLength)))
	}

	_, err = io.WriteString(a.out, b.String())
	return err
}
