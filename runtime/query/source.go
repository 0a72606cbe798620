package query

import (
	"sort"
	"strings"
)

// Source is the candidate-set boundary of the aggregation artifacts. A
// query provider implements it by translating to grouped expressions; the
// Records implementation evaluates in memory.
type Source interface {
	// Values returns the non-null values of the given property over the
	// candidate set, one entry per candidate holding a value.
	Values(field string) ([]any, error)
}

// Record is one materialized candidate. Association values are nested
// records reachable through dotted field names.
type Record map[string]any

// Get implements the Getter contract for a record, traversing dotted
// navigation paths.
func (r Record) Get(field string) (any, bool) {
	cur := r
	for {
		head, rest, nested := strings.Cut(field, ".")
		v, ok := cur[head]
		if !ok || v == nil {
			return nil, false
		}
		if !nested {
			return v, true
		}
		switch next := v.(type) {
		case Record:
			cur = next
		case map[string]any:
			cur = Record(next)
		default:
			return nil, false
		}
		field = rest
	}
}

// Records is an in-memory candidate set. It backs the client-side
// evaluation path and tests; production callers hand the predicate tree
// to their query provider instead.
type Records []Record

// Values implements the Source interface.
func (rs Records) Values(field string) ([]any, error) {
	vs := make([]any, 0, len(rs))
	for _, r := range rs {
		if v, ok := r.Get(field); ok {
			vs = append(vs, v)
		}
	}
	return vs, nil
}

// Filter returns the records matching the given predicate.
func (rs Records) Filter(p Predicate) Records {
	if p == nil {
		return rs
	}
	out := make(Records, 0, len(rs))
	for _, r := range rs {
		if Eval(p, r.Get) {
			out = append(out, r)
		}
	}
	return out
}

// Apply evaluates a full query against the records: the predicate first,
// then the order term. An order field no record carries leaves the input
// order unchanged.
func (rs Records) Apply(q *Query) Records {
	out := rs.Filter(q.Predicate())
	if field, desc := q.Order(); field != "" {
		out = out.sorted(field, desc)
	}
	return out
}

func (rs Records) sorted(field string, desc bool) Records {
	out := make(Records, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := out[i].Get(field)
		vj, okj := out[j].Get(field)
		if !oki || !okj {
			// Null values order last regardless of direction.
			return oki && !okj
		}
		cmp, ok := compare(vi, vj)
		if !ok {
			return false
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

var _ Source = (Records)(nil)
