package fulltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	t.Run("empty resolves to pattern", func(t *testing.T) {
		s, err := ParseStrategy("")
		require.NoError(t, err)
		assert.Equal(t, StrategyPattern, s)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []Strategy{StrategyPattern, StrategyPatternFold, StrategyNatural, StrategyBoolean, StrategyClientSide} {
			parsed, err := ParseStrategy(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseStrategy("fuzzy")
		assert.Error(t, err)
	})
}

func TestDispatcherResolve(t *testing.T) {
	t.Run("pattern is terminal", func(t *testing.T) {
		d := NewDispatcher(nil)
		assert.Equal(t, StrategyPattern, d.Resolve(StrategyPattern))
	})

	t.Run("nil capabilities fall back to pattern", func(t *testing.T) {
		d := NewDispatcher(nil)
		assert.Equal(t, StrategyPattern, d.Resolve(StrategyNatural))
		assert.Equal(t, StrategyPattern, d.Resolve(StrategyBoolean))
		assert.Equal(t, StrategyPattern, d.Resolve(StrategyPatternFold))
	})

	t.Run("available primitives resolve to themselves", func(t *testing.T) {
		d := NewDispatcher(NewCapabilities(CapNatural, CapBoolean, CapPatternFold))
		assert.Equal(t, StrategyNatural, d.Resolve(StrategyNatural))
		assert.Equal(t, StrategyBoolean, d.Resolve(StrategyBoolean))
		assert.Equal(t, StrategyPatternFold, d.Resolve(StrategyPatternFold))
	})

	t.Run("partial capabilities", func(t *testing.T) {
		d := NewDispatcher(NewCapabilities(CapBoolean))
		assert.Equal(t, StrategyBoolean, d.Resolve(StrategyBoolean))
		assert.Equal(t, StrategyPattern, d.Resolve(StrategyNatural))
	})

	t.Run("client side passes through untouched", func(t *testing.T) {
		d := NewDispatcher(nil)
		assert.Equal(t, StrategyClientSide, d.Resolve(StrategyClientSide))
	})

	t.Run("resolution is memoized", func(t *testing.T) {
		d := NewDispatcher(NewCapabilities(CapNatural))
		require.Equal(t, StrategyNatural, d.Resolve(StrategyNatural))
		// The memo answers subsequent resolutions even if the registry
		// is mutated behind the dispatcher's back.
		d.caps = nil
		assert.Equal(t, StrategyNatural, d.Resolve(StrategyNatural))
	})
}

func TestNormalizeTerm(t *testing.T) {
	term, ok := NormalizeTerm("  keyboard  ")
	require.True(t, ok)
	assert.Equal(t, "keyboard", term)

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, ok := NormalizeTerm(raw)
		assert.False(t, ok, "whitespace-only term %q must disable the search", raw)
	}
}

func TestWrapTerm(t *testing.T) {
	assert.Equal(t, "%kb%", WrapTerm("kb", StrategyPattern))
	assert.Equal(t, "%kb%", WrapTerm("kb", StrategyPatternFold))
	assert.Equal(t, `"kb"`, WrapTerm("kb", StrategyBoolean))
	assert.Equal(t, `"say kb"`, WrapTerm(`say "kb"`, StrategyBoolean), "embedded quotes are stripped")
	assert.Equal(t, "kb", WrapTerm("kb", StrategyNatural))
	assert.Equal(t, "kb", WrapTerm("kb", StrategyClientSide))
}
