package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{ err error }

func (s failingSource) Values(string) ([]any, error) { return nil, s.err }

func TestTerms(t *testing.T) {
	src := Records{
		{"brand": "Globex"},
		{"brand": "Acme"},
		{"brand": "Acme"},
		{"brand": "Initech"},
		{"brand": "Globex"},
		{"other": true},
	}

	t.Run("by count with deterministic ties", func(t *testing.T) {
		buckets, err := Terms(src, "brand", ByCount, 0)
		require.NoError(t, err)
		// Acme and Globex tie at 2; ties break by ascending key.
		assert.Equal(t, []Bucket{
			{Key: "Acme", Count: 2},
			{Key: "Globex", Count: 2},
			{Key: "Initech", Count: 1},
		}, buckets)
	})

	t.Run("by value", func(t *testing.T) {
		buckets, err := Terms(src, "brand", ByValue, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Globex", "Initech"}, bucketKeys(buckets))
	})

	t.Run("limit truncates after ordering", func(t *testing.T) {
		buckets, err := Terms(src, "brand", ByCount, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Globex"}, bucketKeys(buckets))
	})

	t.Run("empty set yields empty buckets", func(t *testing.T) {
		buckets, err := Terms(Records{}, "brand", ByCount, 0)
		require.NoError(t, err)
		assert.Empty(t, buckets)
	})

	t.Run("source failure surfaces", func(t *testing.T) {
		cause := errors.New("boom")
		_, err := Terms(failingSource{err: cause}, "brand", ByCount, 0)
		require.ErrorIs(t, err, cause)
	})
}

func TestBounds(t *testing.T) {
	src := Records{
		{"price": 30.0},
		{"price": int64(5)},
		{"price": 12.5},
		{"note": "no price"},
	}

	min, max, err := Bounds(src, "price")
	require.NoError(t, err)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 5.0, *min)
	assert.Equal(t, 30.0, *max)

	t.Run("empty set yields nil bounds", func(t *testing.T) {
		min, max, err := Bounds(Records{}, "price")
		require.NoError(t, err)
		assert.Nil(t, min)
		assert.Nil(t, max)
	})

	t.Run("non-numeric values are skipped", func(t *testing.T) {
		min, max, err := Bounds(Records{{"price": "n/a"}}, "price")
		require.NoError(t, err)
		assert.Nil(t, min)
		assert.Nil(t, max)
	})
}

func TestBoolTally(t *testing.T) {
	src := Records{
		{"in_stock": true},
		{"in_stock": false},
		{"in_stock": true},
		{"in_stock": "yes"},
	}
	trueCount, falseCount, err := BoolTally(src, "in_stock")
	require.NoError(t, err)
	assert.Equal(t, 2, trueCount)
	assert.Equal(t, 1, falseCount)
}

func bucketKeys(buckets []Bucket) []string {
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}
