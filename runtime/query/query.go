package query

// Query is the filter-transform target of generated predicate code. It
// accumulates predicates (combined conjunctively), eager-load roots
// signaled by auto-include navigation facets, and an optional order term.
// A provider translates the accumulated state into its own query grammar;
// the in-memory Records source evaluates it directly.
type Query struct {
	predicates []Predicate
	includes   []string
	orderField string
	orderDesc  bool
}

// New returns an empty query.
func New() *Query {
	return &Query{}
}

// Where adds a predicate to the query. Nil predicates are ignored, so
// conditionally-built fragments can pass through without narrowing the
// candidate set.
func (q *Query) Where(p Predicate) *Query {
	if p != nil {
		q.predicates = append(q.predicates, p)
	}
	return q
}

// Include signals to the provider that the given association root must be
// eagerly loaded before the predicate can be safely evaluated.
func (q *Query) Include(root string) *Query {
	for _, r := range q.includes {
		if r == root {
			return q
		}
	}
	q.includes = append(q.includes, root)
	return q
}

// OrderBy sets the order term of the query.
func (q *Query) OrderBy(field string, desc bool) *Query {
	q.orderField = field
	q.orderDesc = desc
	return q
}

// Predicate returns the conjunction of all accumulated predicates, or nil
// if the query is unconstrained.
func (q *Query) Predicate() Predicate {
	return And(q.predicates...)
}

// Includes returns the association roots that require eager loading.
func (q *Query) Includes() []string {
	return q.includes
}

// Order returns the order term of the query. An empty field means
// unordered.
func (q *Query) Order() (field string, desc bool) {
	return q.orderField, q.orderDesc
}

// Clone returns a copy of the query that can diverge from the receiver.
func (q *Query) Clone() *Query {
	nq := &Query{
		predicates: make([]Predicate, len(q.predicates)),
		includes:   make([]string, len(q.includes)),
		orderField: q.orderField,
		orderDesc:  q.orderDesc,
	}
	copy(nq.predicates, q.predicates)
	copy(nq.includes, q.includes)
	return nq
}
