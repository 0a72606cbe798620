package query

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// foldCaser normalizes strings for case-insensitive comparison. Unicode
// case folding, not ASCII lowering, so folded matches agree with the
// provider's collation more often.
var foldCaser = cases.Fold()

// Getter reads one property value of a materialized candidate. The second
// result reports whether the property exists and is non-null.
type Getter func(field string) (any, bool)

// Eval evaluates a predicate tree in-process against a single candidate.
// It backs the client-side strategy and the Records source; the regular
// path hands the tree to a query provider instead.
func Eval(p Predicate, get Getter) bool {
	switch p := p.(type) {
	case nil:
		return true
	case *Cond:
		return evalCond(p, get)
	case *AndPredicate:
		for _, c := range p.Predicates {
			if !Eval(c, get) {
				return false
			}
		}
		return true
	case *OrPredicate:
		for _, c := range p.Predicates {
			if Eval(c, get) {
				return true
			}
		}
		return false
	case *NotPredicate:
		return !Eval(p.Predicate, get)
	case *ClientSidePredicate:
		return p.Fn(get)
	default:
		return false
	}
}

func evalCond(c *Cond, get Getter) bool {
	v, ok := get(c.Field)
	if !ok || v == nil {
		return false
	}
	switch c.Op {
	case OpEQ, OpNEQ:
		eq := equal(v, c.Value, c.Fold)
		if c.Op == OpNEQ {
			return !eq
		}
		return eq
	case OpIn:
		return member(v, c.Value)
	case OpGT, OpGTE, OpLT, OpLTE:
		cmp, ok := compare(v, c.Value)
		if !ok {
			return false
		}
		switch c.Op {
		case OpGT:
			return cmp > 0
		case OpGTE:
			return cmp >= 0
		case OpLT:
			return cmp < 0
		default:
			return cmp <= 0
		}
	case OpContains, OpMatch, OpMatchBool:
		operand := c.Value
		if c.Op == OpMatchBool {
			// Boolean-grammar terms arrive quoted; the in-memory
			// equivalent is an unquoted substring match.
			if t, ok := operand.(string); ok {
				operand = strings.Trim(t, `"`)
			}
		}
		s, t, ok := stringPair(v, operand, c.Fold || c.Op != OpContains)
		if !ok {
			return false
		}
		return strings.Contains(s, t)
	case OpHasPrefix:
		s, t, ok := stringPair(v, c.Value, c.Fold)
		if !ok {
			return false
		}
		return strings.HasPrefix(s, t)
	case OpHasSuffix:
		s, t, ok := stringPair(v, c.Value, c.Fold)
		if !ok {
			return false
		}
		return strings.HasSuffix(s, t)
	case OpWithin:
		d, ok := c.Value.(GeoDistance)
		if !ok {
			return false
		}
		p, ok := geoValue(v)
		if !ok {
			return false
		}
		return haversineKm(d.Lat, d.Lon, p.Lat, p.Lon) <= d.RadiusKm
	default:
		return false
	}
}

// GeoPoint is the in-memory representation of a geo property value.
type GeoPoint struct {
	Lat float64
	Lon float64
}

func geoValue(v any) (GeoPoint, bool) {
	switch v := v.(type) {
	case GeoPoint:
		return v, true
	case *GeoPoint:
		if v != nil {
			return *v, true
		}
	case [2]float64:
		return GeoPoint{Lat: v[0], Lon: v[1]}, true
	}
	return GeoPoint{}, false
}

// haversineKm returns the great-circle distance between two points in
// kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func equal(v, operand any, fold bool) bool {
	if s, ok := stringValue(v); ok {
		t, ok := stringValue(operand)
		if !ok {
			return false
		}
		if fold {
			return foldCaser.String(s) == foldCaser.String(t)
		}
		return s == t
	}
	if cmp, ok := compare(v, operand); ok {
		return cmp == 0
	}
	if b, ok := v.(bool); ok {
		t, ok := operand.(bool)
		return ok && b == t
	}
	return false
}

func member(v, set any) bool {
	switch set := set.(type) {
	case []string:
		s, ok := stringValue(v)
		if !ok {
			return false
		}
		for _, m := range set {
			if s == m {
				return true
			}
		}
	case []int64:
		n, ok := numeric(v)
		if !ok {
			return false
		}
		for _, m := range set {
			if n == float64(m) {
				return true
			}
		}
	case []float64:
		n, ok := numeric(v)
		if !ok {
			return false
		}
		for _, m := range set {
			if n == m {
				return true
			}
		}
	}
	return false
}

// compare orders two values of a compatible type. The second result is
// false when the values cannot be ordered.
func compare(a, b any) (int, bool) {
	if ta, ok := a.(time.Time); ok {
		tb, ok := timeValue(b)
		if !ok {
			return 0, false
		}
		return ta.Compare(tb), true
	}
	if na, ok := numeric(a); ok {
		nb, ok := numeric(b)
		if !ok {
			return 0, false
		}
		switch {
		case na < nb:
			return -1, true
		case na > nb:
			return 1, true
		default:
			return 0, true
		}
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

func stringPair(v, operand any, fold bool) (s, t string, ok bool) {
	s, ok = stringValue(v)
	if !ok {
		return "", "", false
	}
	t, ok = stringValue(operand)
	if !ok {
		return "", "", false
	}
	if fold {
		s, t = foldCaser.String(s), foldCaser.String(t)
	}
	return s, t, true
}

func stringValue(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case *string:
		if v != nil {
			return *v, true
		}
	}
	return "", false
}

func timeValue(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

func numeric(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case *int64:
		if v != nil {
			return float64(*v), true
		}
	case *float64:
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}
