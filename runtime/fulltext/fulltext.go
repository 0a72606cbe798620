// Package fulltext resolves which text-matching primitive generated
// search code targets at the consuming runtime, with a defined fallback
// order when the declared primitive is unavailable.
package fulltext

import (
	"fmt"
	"strings"
	"sync"
)

// Strategy is a symbolic full-text matching strategy.
type Strategy int

// Full-text strategies.
const (
	// StrategyPattern is the universal naive pattern match. It works
	// under any provider capable of substring comparison and is the
	// default and the terminal fallback.
	StrategyPattern Strategy = iota
	// StrategyPatternFold is a provider case-insensitive pattern match.
	StrategyPatternFold
	// StrategyNatural is a provider natural-language match.
	StrategyNatural
	// StrategyBoolean is a provider boolean-operator match.
	StrategyBoolean
	// StrategyClientSide bypasses provider translation and evaluates the
	// full-text condition in-process. Reserved for small result sets;
	// callers are not prevented from misusing it at scale.
	StrategyClientSide
)

var strategyNames = [...]string{
	StrategyPattern:     "pattern",
	StrategyPatternFold: "patternfold",
	StrategyNatural:     "natural",
	StrategyBoolean:     "boolean",
	StrategyClientSide:  "clientside",
}

// String returns the symbolic name of the strategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy resolves a symbolic strategy name. An empty name resolves
// to the default pattern strategy.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyPattern, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return StrategyPattern, fmt.Errorf("fulltext: unknown strategy %q", name)
}

// Capability is one query-provider text-matching primitive.
type Capability int

// Provider capabilities.
const (
	CapPatternFold Capability = iota
	CapNatural
	CapBoolean
)

// Capabilities is an explicit registry of the query-provider primitives
// available at the consuming runtime. The host application resolves it
// once at startup and injects it into the dispatcher; there is no global
// probing.
type Capabilities struct {
	caps map[Capability]bool
}

// NewCapabilities returns a registry holding the given capabilities.
func NewCapabilities(caps ...Capability) *Capabilities {
	c := &Capabilities{caps: make(map[Capability]bool, len(caps))}
	for _, cap := range caps {
		c.caps[cap] = true
	}
	return c
}

// Has reports whether the capability is available. A nil registry has no
// capabilities.
func (c *Capabilities) Has(cap Capability) bool {
	return c != nil && c.caps[cap]
}

// Dispatcher resolves declared strategies against the injected capability
// registry. Resolution is attempted once per strategy and memoized for
// the dispatcher's lifetime; probing never raises, absence is treated as
// fallback.
type Dispatcher struct {
	caps *Capabilities

	mu   sync.Mutex
	memo map[Strategy]Strategy
}

// NewDispatcher returns a dispatcher over the given capability registry.
// A nil registry resolves every provider strategy to the pattern
// fallback.
func NewDispatcher(caps *Capabilities) *Dispatcher {
	return &Dispatcher{caps: caps, memo: make(map[Strategy]Strategy)}
}

// Resolve maps a declared strategy to the strategy the runtime can
// actually execute. Provider strategies whose primitive is unavailable
// fall back to the universal pattern match; the client-side strategy
// passes through untouched.
func (d *Dispatcher) Resolve(s Strategy) Strategy {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.memo[s]; ok {
		return r
	}
	r := d.resolve(s)
	d.memo[s] = r
	return r
}

func (d *Dispatcher) resolve(s Strategy) Strategy {
	switch s {
	case StrategyPatternFold:
		if d.caps.Has(CapPatternFold) {
			return s
		}
	case StrategyNatural:
		if d.caps.Has(CapNatural) {
			return s
		}
	case StrategyBoolean:
		if d.caps.Has(CapBoolean) {
			return s
		}
	case StrategyClientSide:
		return s
	}
	return StrategyPattern
}

// NormalizeTerm trims the search term and reports whether it constitutes
// a search at all. A term that is empty or consists only of whitespace
// disables the entire full-text fragment.
func NormalizeTerm(term string) (string, bool) {
	term = strings.TrimSpace(term)
	return term, term != ""
}

// WrapTerm wraps a normalized term as required by the target primitive:
// wildcard-wrapped for pattern matches, quoted for boolean-operator
// grammars, untouched otherwise.
func WrapTerm(term string, s Strategy) string {
	switch s {
	case StrategyPattern, StrategyPatternFold:
		return "%" + term + "%"
	case StrategyBoolean:
		return `"` + strings.ReplaceAll(term, `"`, ``) + `"`
	default:
		return term
	}
}
