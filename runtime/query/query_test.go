package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	brand := StringField("brand")
	price := Float64Field("price")

	t.Run("empty query has no predicate", func(t *testing.T) {
		q := New()
		require.Nil(t, q.Predicate())
	})

	t.Run("nil predicates are ignored", func(t *testing.T) {
		q := New().Where(nil).Where(brand.EQ("Acme")).Where(nil)
		p := q.Predicate()
		require.NotNil(t, p)
		_, grouped := p.(*AndPredicate)
		assert.False(t, grouped, "single predicate should stay unwrapped")
	})

	t.Run("predicates combine conjunctively", func(t *testing.T) {
		q := New().Where(brand.EQ("Acme")).Where(price.LTE(100))
		and, ok := q.Predicate().(*AndPredicate)
		require.True(t, ok)
		assert.Len(t, and.Predicates, 2)
	})

	t.Run("includes deduplicate", func(t *testing.T) {
		q := New().Include("customer").Include("customer").Include("vendor")
		assert.Equal(t, []string{"customer", "vendor"}, q.Includes())
	})

	t.Run("order term", func(t *testing.T) {
		q := New()
		field, desc := q.Order()
		assert.Empty(t, field)
		q.OrderBy("price", true)
		field, desc = q.Order()
		assert.Equal(t, "price", field)
		assert.True(t, desc)
	})

	t.Run("clone diverges", func(t *testing.T) {
		q := New().Where(brand.EQ("Acme")).Include("customer")
		c := q.Clone()
		c.Where(price.GTE(1)).Include("vendor").OrderBy("price", false)
		and, ok := c.Predicate().(*AndPredicate)
		require.True(t, ok)
		assert.Len(t, and.Predicates, 2)
		_, single := q.Predicate().(*Cond)
		assert.True(t, single)
		assert.Equal(t, []string{"customer"}, q.Includes())
	})
}
