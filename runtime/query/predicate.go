// Package query provides the candidate-set abstraction that generated
// search artifacts operate on: a composable, provider-translatable
// predicate tree, typed field helpers for building conditions, and an
// in-memory record source used by the client-side evaluation path.
package query

// Op is a comparison operator of a condition node. Every operator except
// the client-side escape is expressible as a provider-translatable
// expression.
type Op int

// Condition operators.
const (
	OpEQ        Op = iota // =
	OpNEQ                 // <>
	OpIn                  // value is a member of a set
	OpGT                  // >
	OpGTE                 // >=
	OpLT                  // <
	OpLTE                 // <=
	OpContains            // substring match
	OpHasPrefix           // prefix match
	OpHasSuffix           // suffix match
	OpMatch               // provider natural-language match
	OpMatchBool           // provider boolean-operator match
	OpWithin              // geo within-radius match
)

var opText = [...]string{
	OpEQ:        "=",
	OpNEQ:       "<>",
	OpIn:        "in",
	OpGT:        ">",
	OpGTE:       ">=",
	OpLT:        "<",
	OpLTE:       "<=",
	OpContains:  "contains",
	OpHasPrefix: "has_prefix",
	OpHasSuffix: "has_suffix",
	OpMatch:     "match",
	OpMatchBool: "match_bool",
	OpWithin:    "within",
}

// String returns the operator text.
func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return ""
}

// A Predicate is one composable unit of filter logic. The concrete nodes
// form an expression tree that a query provider translates into its own
// grammar, except ClientSidePredicate which is evaluated in-process.
type Predicate interface {
	predicate()
}

// Cond is a single field condition.
type Cond struct {
	// Field is the property name the condition applies to. Facets sourced
	// through an association use the dotted navigation path.
	Field string
	// Op is the comparison operator.
	Op Op
	// Value is the right-hand operand. For OpIn it is a []string or a
	// slice of the field type; for OpWithin it is a GeoDistance.
	Value any
	// Fold requests case-insensitive comparison for string operators.
	Fold bool
}

// AndPredicate groups predicates with the AND operator between them.
type AndPredicate struct {
	Predicates []Predicate
}

// OrPredicate groups predicates with the OR operator between them.
type OrPredicate struct {
	Predicates []Predicate
}

// NotPredicate negates its child predicate.
type NotPredicate struct {
	Predicate Predicate
}

// ClientSidePredicate evaluates its function against materialized
// candidates in-process. It is the one permitted escape from provider
// translation and should be reserved for small result sets.
type ClientSidePredicate struct {
	Fn func(Getter) bool
}

// GeoDistance is the operand of an OpWithin condition.
type GeoDistance struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
}

func (*Cond) predicate()                {}
func (*AndPredicate) predicate()        {}
func (*OrPredicate) predicate()         {}
func (*NotPredicate) predicate()        {}
func (*ClientSidePredicate) predicate() {}

// And groups predicates with the AND operator between them. A single
// predicate is returned unwrapped, and nil is returned for an empty list.
func And(predicates ...Predicate) Predicate {
	switch ps := compact(predicates); len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	default:
		return &AndPredicate{Predicates: ps}
	}
}

// Or groups predicates with the OR operator between them. A single
// predicate is returned unwrapped, and nil is returned for an empty list.
func Or(predicates ...Predicate) Predicate {
	switch ps := compact(predicates); len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	default:
		return &OrPredicate{Predicates: ps}
	}
}

// Not applies the not operator on the given predicate.
func Not(p Predicate) Predicate {
	if p == nil {
		return nil
	}
	return &NotPredicate{Predicate: p}
}

// ClientSide returns a predicate evaluated in-process against each
// materialized candidate.
func ClientSide(fn func(Getter) bool) Predicate {
	return &ClientSidePredicate{Fn: fn}
}

func compact(predicates []Predicate) []Predicate {
	ps := make([]Predicate, 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}
