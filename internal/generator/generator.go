// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords from policy-selected character
// sets.
//
// Every character is drawn independently and uniformly from the policy
// charset using crypto/rand. Nothing is cached between calls.
package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// DefaultCount is the number of passwords offered when the caller does
	// not ask for a specific amount.
	DefaultCount = 3
	// MaxCount caps a single GenerateMany call.
	MaxCount = 10
)

// Generator draws passwords from a cryptographically secure random source.
// The zero value is not usable; construct one with [New].
type Generator struct {
	random           io.Reader
	excludeAmbiguous bool
}

// Option configures a [Generator].
type Option func(*Generator)

// WithRandom replaces the random source. Only tests should need this; the
// reader must still be unpredictable in production.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// WithAmbiguous keeps the ambiguous glyphs l, I, 1, O and 0 in every charset.
func WithAmbiguous() Option {
	return func(g *Generator) {
		g.excludeAmbiguous = false
	}
}

// New returns a Generator reading from crypto/rand with ambiguous glyphs
// excluded.
func New(opts ...Option) *Generator {
	g := &Generator{
		random:           rand.Reader,
		excludeAmbiguous: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns one password of exactly length characters drawn from the
// charset of p.
func (g *Generator) Generate(p Policy, length int) (string, error) {
	charset, err := g.charsetFor(p, length)
	if err != nil {
		return "", err
	}
	return g.draw(charset, length)
}

// GenerateMany returns count independent passwords of the given policy and
// length.
func (g *Generator) GenerateMany(p Policy, length, count int) ([]string, error) {
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidCount, count, MaxCount)
	}

	charset, err := g.charsetFor(p, length)
	if err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for range count {
		pw, err := g.draw(charset, length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}

	return passwords, nil
}

func (g *Generator) charsetFor(p Policy, length int) ([]rune, error) {
	bounds, err := BoundsFor(p)
	if err != nil {
		return nil, err
	}
	if !bounds.Contains(length) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d] for %s policy", ErrInvalidLength, length, bounds.Min, bounds.Max, p)
	}

	charset, err := Charset(p, g.excludeAmbiguous)
	if err != nil {
		return nil, err
	}
	return []rune(charset), nil
}

func (g *Generator) draw(charset []rune, length int) (string, error) {
	upper := big.NewInt(int64(len(charset)))

	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(g.random, upper)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		out[i] = charset[n.Int64()]
	}

	return string(out), nil
}
