package query

import "time"

// StringField provides type-safe condition builders for a string property.
// Generated predicate code declares package-level fields once:
//
//	var brand = query.StringField("brand")
//	q.Where(brand.In("X", "Y"))
type StringField string

// Name returns the property name.
func (f StringField) Name() string { return string(f) }

// EQ returns a condition that checks if the field equals the given value.
func (f StringField) EQ(v string) Predicate {
	return &Cond{Field: string(f), Op: OpEQ, Value: v}
}

// EqualFold returns a case-insensitive equality condition.
func (f StringField) EqualFold(v string) Predicate {
	return &Cond{Field: string(f), Op: OpEQ, Value: v, Fold: true}
}

// In returns a condition that checks if the field value is a member of
// the given set.
func (f StringField) In(vs ...string) Predicate {
	return &Cond{Field: string(f), Op: OpIn, Value: vs}
}

// Contains returns a substring-match condition.
func (f StringField) Contains(v string) Predicate {
	return &Cond{Field: string(f), Op: OpContains, Value: v}
}

// ContainsFold returns a case-insensitive substring-match condition.
func (f StringField) ContainsFold(v string) Predicate {
	return &Cond{Field: string(f), Op: OpContains, Value: v, Fold: true}
}

// HasPrefix returns a prefix-match condition.
func (f StringField) HasPrefix(v string) Predicate {
	return &Cond{Field: string(f), Op: OpHasPrefix, Value: v}
}

// HasPrefixFold returns a case-insensitive prefix-match condition.
func (f StringField) HasPrefixFold(v string) Predicate {
	return &Cond{Field: string(f), Op: OpHasPrefix, Value: v, Fold: true}
}

// HasSuffix returns a suffix-match condition.
func (f StringField) HasSuffix(v string) Predicate {
	return &Cond{Field: string(f), Op: OpHasSuffix, Value: v}
}

// HasSuffixFold returns a case-insensitive suffix-match condition.
func (f StringField) HasSuffixFold(v string) Predicate {
	return &Cond{Field: string(f), Op: OpHasSuffix, Value: v, Fold: true}
}

// Match returns a provider natural-language match condition.
func (f StringField) Match(term string) Predicate {
	return &Cond{Field: string(f), Op: OpMatch, Value: term}
}

// MatchBool returns a provider boolean-operator match condition.
func (f StringField) MatchBool(term string) Predicate {
	return &Cond{Field: string(f), Op: OpMatchBool, Value: term}
}

// Int64Field provides type-safe condition builders for an integer
// property.
type Int64Field string

// Name returns the property name.
func (f Int64Field) Name() string { return string(f) }

// EQ returns a condition that checks if the field equals the given value.
func (f Int64Field) EQ(v int64) Predicate {
	return &Cond{Field: string(f), Op: OpEQ, Value: v}
}

// In returns a condition that checks if the field value is a member of
// the given set.
func (f Int64Field) In(vs ...int64) Predicate {
	return &Cond{Field: string(f), Op: OpIn, Value: vs}
}

// GTE returns a condition that checks if the field is greater than or
// equal to the given value.
func (f Int64Field) GTE(v int64) Predicate {
	return &Cond{Field: string(f), Op: OpGTE, Value: v}
}

// LTE returns a condition that checks if the field is less than or equal
// to the given value.
func (f Int64Field) LTE(v int64) Predicate {
	return &Cond{Field: string(f), Op: OpLTE, Value: v}
}

// Float64Field provides type-safe condition builders for a decimal or
// float property.
type Float64Field string

// Name returns the property name.
func (f Float64Field) Name() string { return string(f) }

// EQ returns a condition that checks if the field equals the given value.
func (f Float64Field) EQ(v float64) Predicate {
	return &Cond{Field: string(f), Op: OpEQ, Value: v}
}

// GTE returns a condition that checks if the field is greater than or
// equal to the given value.
func (f Float64Field) GTE(v float64) Predicate {
	return &Cond{Field: string(f), Op: OpGTE, Value: v}
}

// LTE returns a condition that checks if the field is less than or equal
// to the given value.
func (f Float64Field) LTE(v float64) Predicate {
	return &Cond{Field: string(f), Op: OpLTE, Value: v}
}

// BoolField provides type-safe condition builders for a boolean property.
type BoolField string

// Name returns the property name.
func (f BoolField) Name() string { return string(f) }

// EQ returns a condition that checks if the field equals the given value.
func (f BoolField) EQ(v bool) Predicate {
	return &Cond{Field: string(f), Op: OpEQ, Value: v}
}

// TimeField provides type-safe condition builders for a date property.
type TimeField string

// Name returns the property name.
func (f TimeField) Name() string { return string(f) }

// GTE returns a condition that checks if the field is at or after the
// given instant.
func (f TimeField) GTE(v time.Time) Predicate {
	return &Cond{Field: string(f), Op: OpGTE, Value: v}
}

// LTE returns a condition that checks if the field is at or before the
// given instant.
func (f TimeField) LTE(v time.Time) Predicate {
	return &Cond{Field: string(f), Op: OpLTE, Value: v}
}

// GeoField provides the within-radius condition builder for a geo
// property.
type GeoField string

// Name returns the property name.
func (f GeoField) Name() string { return string(f) }

// Within returns a condition that checks if the field lies within
// radiusKm kilometers of the given point.
func (f GeoField) Within(lat, lon, radiusKm float64) Predicate {
	return &Cond{Field: string(f), Op: OpWithin, Value: GeoDistance{Lat: lat, Lon: lon, RadiusKm: radiusKm}}
}
