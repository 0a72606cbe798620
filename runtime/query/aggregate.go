package query

import (
	"fmt"
	"sort"
)

// Bucket is one value group of a categorical aggregation.
type Bucket struct {
	Key   string
	Count int
}

// TermOrder determines the ordering of categorical aggregation buckets.
type TermOrder int

const (
	// ByCount orders buckets by descending count. Ties break by
	// ascending key so identical input yields identical output.
	ByCount TermOrder = iota
	// ByValue orders buckets by ascending key.
	ByValue
)

// Terms computes a grouped-count aggregation over the candidate set. The
// limit truncates to the top n buckets after ordering; zero means
// unlimited. An empty candidate set yields an empty bucket list.
func Terms(src Source, field string, order TermOrder, limit int) ([]Bucket, error) {
	vs, err := src.Values(field)
	if err != nil {
		return nil, fmt.Errorf("query: terms aggregation on %q: %w", field, err)
	}
	counts := make(map[string]int, len(vs))
	for _, v := range vs {
		counts[termKey(v)]++
	}
	buckets := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		buckets = append(buckets, Bucket{Key: k, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if order == ByValue {
			return buckets[i].Key < buckets[j].Key
		}
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets, nil
}

// Bounds computes the (min, max) pair of a numeric property over the
// candidate set. An empty candidate set yields nil bounds, never an
// error.
func Bounds(src Source, field string) (min, max *float64, err error) {
	vs, err := src.Values(field)
	if err != nil {
		return nil, nil, fmt.Errorf("query: bounds aggregation on %q: %w", field, err)
	}
	for _, v := range vs {
		n, ok := numeric(v)
		if !ok {
			continue
		}
		if min == nil || n < *min {
			n := n
			min = &n
		}
		if max == nil || n > *max {
			n := n
			max = &n
		}
	}
	return min, max, nil
}

// BoolTally counts the true and false values of a boolean property over
// the candidate set.
func BoolTally(src Source, field string) (trueCount, falseCount int, err error) {
	vs, err := src.Values(field)
	if err != nil {
		return 0, 0, fmt.Errorf("query: boolean aggregation on %q: %w", field, err)
	}
	for _, v := range vs {
		b, ok := v.(bool)
		if !ok {
			continue
		}
		if b {
			trueCount++
		} else {
			falseCount++
		}
	}
	return trueCount, falseCount, nil
}

func termKey(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
