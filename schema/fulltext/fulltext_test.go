package fulltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facetc/schema"
)

func TestField(t *testing.T) {
	fd := Field("name").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "name", fd.Name)
	assert.Equal(t, schema.TypeString, fd.Type)
	assert.Equal(t, 1.0, fd.Weight, "weight defaults to 1")
	assert.Equal(t, Contains, fd.Behavior, "behavior defaults to substring")
	assert.False(t, fd.CaseSensitive)

	t.Run("weight", func(t *testing.T) {
		fd := Field("name").Weight(2.5).Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, 2.5, fd.Weight)
	})

	t.Run("negative weight defers an error", func(t *testing.T) {
		fd := Field("name").Weight(-1).Descriptor()
		assert.Error(t, fd.Err)
	})

	t.Run("behaviors", func(t *testing.T) {
		assert.Equal(t, StartsWith, Field("slug").StartsWith().Descriptor().Behavior)
		assert.Equal(t, EndsWith, Field("slug").EndsWith().Descriptor().Behavior)
		assert.Equal(t, Exact, Field("sku").Exact().Descriptor().Behavior)
	})

	t.Run("case sensitivity", func(t *testing.T) {
		fd := Field("sku").Exact().CaseSensitive().Descriptor()
		assert.True(t, fd.CaseSensitive)
	})
}

func TestParseBehavior(t *testing.T) {
	b, err := ParseBehavior("")
	require.NoError(t, err)
	assert.Equal(t, Contains, b)

	for _, b := range []Behavior{Contains, StartsWith, EndsWith, Exact} {
		parsed, err := ParseBehavior(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	_, err = ParseBehavior("Fuzzy")
	assert.Error(t, err)
}
