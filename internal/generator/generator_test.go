package generator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharset_ExcludesAmbiguousByDefault(t *testing.T) {
	for _, p := range Policies() {
		t.Run(string(p), func(t *testing.T) {
			set, err := Charset(p, true)
			require.NoError(t, err)
			assert.False(t, strings.ContainsAny(set, ambiguous), "charset %q contains ambiguous glyphs", set)
		})
	}
}

func TestCharset_Composition(t *testing.T) {
	tests := []struct {
		policy     Policy
		wantUpper  bool
		wantPunct  bool
		wantLength int
	}{
		// 26 lowercase - 1 (l) + 10 digits - 2 (0, 1)
		{policy: Simple, wantUpper: false, wantPunct: false, wantLength: 33},
		// + 26 uppercase - 2 (I, O)
		{policy: Medium, wantUpper: true, wantPunct: false, wantLength: 57},
		// + 28 punctuation characters
		{policy: Strong, wantUpper: true, wantPunct: true, wantLength: 85},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			set, err := Charset(tt.policy, true)
			require.NoError(t, err)

			assert.Len(t, set, tt.wantLength)
			assert.Equal(t, tt.wantUpper, strings.ContainsAny(set, "ABCDEFGH"))
			assert.Equal(t, tt.wantPunct, strings.ContainsAny(set, "!#$%"))
			assert.False(t, strings.ContainsAny(set, "\"'\\`"))
		})
	}
}

func TestCharset_WithAmbiguous(t *testing.T) {
	set, err := Charset(Medium, false)
	require.NoError(t, err)
	assert.True(t, strings.ContainsAny(set, ambiguous))
	assert.Len(t, set, 62)
}

func TestCharset_UnknownPolicy(t *testing.T) {
	_, err := Charset(Policy("extreme"), true)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Policy
		wantErr error
	}{
		{name: "simple", input: "simple", want: Simple},
		{name: "mixed case with spaces", input: "  Strong ", want: Strong},
		{name: "medium", input: "MEDIUM", want: Medium},
		{name: "unknown", input: "paranoid", wantErr: ErrInvalidPolicy},
		{name: "empty", input: "", wantErr: ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_LengthAndCharset(t *testing.T) {
	g := New()

	for _, p := range Policies() {
		bounds, err := BoundsFor(p)
		require.NoError(t, err)
		set, err := Charset(p, true)
		require.NoError(t, err)

		for _, length := range []int{bounds.Min, bounds.Default, bounds.Max} {
			pw, err := g.Generate(p, length)
			require.NoError(t, err)

			assert.Equal(t, length, len([]rune(pw)), "policy %s", p)
			for _, r := range pw {
				assert.True(t, strings.ContainsRune(set, r), "policy %s: unexpected %q", p, r)
			}
			assert.False(t, strings.ContainsAny(pw, ambiguous))
		}
	}
}

func TestGenerate_RejectsOutOfRangeLength(t *testing.T) {
	g := New()

	for _, p := range Policies() {
		bounds, err := BoundsFor(p)
		require.NoError(t, err)

		for _, length := range []int{-1, 0, bounds.Min - 1, bounds.Max + 1, 1000} {
			pw, err := g.Generate(p, length)
			assert.ErrorIs(t, err, ErrInvalidLength, "policy %s length %d", p, length)
			assert.Empty(t, pw)
		}
	}
}

func TestGenerate_UnknownPolicy(t *testing.T) {
	_, err := New().Generate(Policy("ultra"), 12)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestGenerate_CallsAreIndependent(t *testing.T) {
	g := New()

	seen := make(map[string]struct{})
	for range 50 {
		pw, err := g.Generate(Strong, 20)
		require.NoError(t, err)
		seen[pw] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestGenerate_UsesInjectedRandom(t *testing.T) {
	// an all-zero stream always picks the first charset character
	g := New(WithRandom(bytes.NewReader(make([]byte, 64))))

	pw, err := g.Generate(Simple, 4)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", pw)
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	g := New(WithRandom(bytes.NewReader(nil)))

	_, err := g.Generate(Simple, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRandomSource))
}

func TestGenerateMany(t *testing.T) {
	g := New()

	passwords, err := g.GenerateMany(Medium, 12, DefaultCount)
	require.NoError(t, err)
	require.Len(t, passwords, DefaultCount)
	for _, pw := range passwords {
		assert.Len(t, pw, 12)
	}
}

func TestGenerateMany_Validation(t *testing.T) {
	g := New()

	tests := []struct {
		name    string
		policy  Policy
		length  int
		count   int
		wantErr error
	}{
		{name: "zero count", policy: Simple, length: 8, count: 0, wantErr: ErrInvalidCount},
		{name: "count above max", policy: Simple, length: 8, count: MaxCount + 1, wantErr: ErrInvalidCount},
		{name: "bad length", policy: Strong, length: 7, count: 3, wantErr: ErrInvalidLength},
		{name: "bad policy", policy: "nope", length: 8, count: 3, wantErr: ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.GenerateMany(tt.policy, tt.length, tt.count)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}
