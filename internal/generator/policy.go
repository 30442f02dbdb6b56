// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"fmt"
	"strings"
)

// Policy is a named password-strength tier. It selects the character classes
// a password is drawn from and the range of lengths that may be requested.
type Policy string

const (
	// Simple draws from lowercase letters and digits.
	Simple Policy = "simple"
	// Medium adds uppercase letters to [Simple].
	Medium Policy = "medium"
	// Strong adds punctuation to [Medium], except quote, backslash and
	// backtick characters.
	Strong Policy = "strong"
)

const (
	lowercase   = "abcdefghijklmnopqrstuvwxyz"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!#$%&()*+,-./:;<=>?@[]^_{|}~"

	// ambiguous glyphs are easy to mistype when a password is copied by hand.
	ambiguous = "lI1O0"
)

// Bounds describes the permitted length range of a [Policy] and the length
// used when the caller does not ask for a specific one.
type Bounds struct {
	Min     int
	Max     int
	Default int
}

var policyBounds = map[Policy]Bounds{
	Simple: {Min: 4, Max: 32, Default: 8},
	Medium: {Min: 6, Max: 64, Default: 12},
	Strong: {Min: 8, Max: 128, Default: 20},
}

// Policies lists every known policy from weakest to strongest.
func Policies() []Policy {
	return []Policy{Simple, Medium, Strong}
}

// ParsePolicy maps a policy name to a [Policy]. Names are matched
// case-insensitively after trimming surrounding whitespace.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := policyBounds[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
	return p, nil
}

// BoundsFor returns the length bounds of p.
func BoundsFor(p Policy) (Bounds, error) {
	b, ok := policyBounds[p]
	if !ok {
		return Bounds{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p))
	}
	return b, nil
}

// Contains reports whether length lies within b.
func (b Bounds) Contains(length int) bool {
	return length >= b.Min && length <= b.Max
}

// Charset returns the characters a password of policy p is drawn from.
// When excludeAmbiguous is set the glyphs l, I, 1, O and 0 are removed.
func Charset(p Policy, excludeAmbiguous bool) (string, error) {
	var set string
	switch p {
	case Simple:
		set = lowercase + digits
	case Medium:
		set = lowercase + uppercase + digits
	case Strong:
		set = lowercase + uppercase + digits + punctuation
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p))
	}

	if !excludeAmbiguous {
		return set, nil
	}

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ambiguous, r) {
			return -1
		}
		return r
	}, set), nil
}
