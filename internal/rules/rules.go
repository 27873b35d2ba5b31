package rules

import (
	"fmt"
	"regexp"
)

// Rule identifies one secret shape: a compiled pattern plus the metadata that
// controls false-positive suppression for its matches.
type Rule struct {
	Name        string
	Expr        *regexp.Regexp
	Description string

	// MinEntropy suppresses matches whose Shannon entropy falls strictly
	// below this value. Zero means no entropy floor.
	MinEntropy float64

	// ExactExclusions suppress matches equal (case-insensitively) to any
	// listed value, regardless of entropy.
	ExactExclusions []string

	// ContextExclusions suppress a match when any listed substring appears
	// (case-insensitively) in the full source line.
	ContextExclusions []string
}

// Definition is the uncompiled form of a Rule, used for the built-in table.
type Definition struct {
	Name              string
	Pattern           string
	IgnoreCase        bool
	Description       string
	MinEntropy        float64
	ExactExclusions   []string
	ContextExclusions []string
}

// Registry is an ordered, immutable set of rules. Insertion order determines
// scan order per line and therefore output ordering when several rules match
// the same line.
type Registry struct {
	rules  []Rule
	byName map[string]int
}

// Build compiles definitions into a Registry. A pattern that fails to compile
// or a duplicate name is a programming error in the rule table; callers treat
// the returned error as fatal.
func Build(defs []Definition) (*Registry, error) {
	reg := &Registry{byName: make(map[string]int, len(defs))}
	for _, d := range defs {
		if _, dup := reg.byName[d.Name]; dup {
			return nil, fmt.Errorf("rules: duplicate rule name %q", d.Name)
		}
		pat := d.Pattern
		if d.IgnoreCase {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("rules: invalid pattern for %q: %w", d.Name, err)
		}
		reg.byName[d.Name] = len(reg.rules)
		reg.rules = append(reg.rules, Rule{
			Name:              d.Name,
			Expr:              re,
			Description:       d.Description,
			MinEntropy:        d.MinEntropy,
			ExactExclusions:   d.ExactExclusions,
			ContextExclusions: d.ContextExclusions,
		})
	}
	return reg, nil
}

// MustBuild is Build for the built-in table, panicking on error.
func MustBuild(defs []Definition) *Registry {
	reg, err := Build(defs)
	if err != nil {
		panic(err)
	}
	return reg
}

// Rules returns the rules in registry order. Callers must not mutate the
// returned slice.
func (r *Registry) Rules() []Rule { return r.rules }

// Get returns the rule with the given name.
func (r *Registry) Get(name string) (Rule, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Rule{}, false
	}
	return r.rules[i], true
}

// Names returns rule names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.rules))
	for i, rl := range r.rules {
		out[i] = rl.Name
	}
	return out
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.rules) }
