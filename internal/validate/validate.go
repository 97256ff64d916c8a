// Package validate checks approved-disclaimer records locally before they
// are sent to the service, so a bad seed file fails fast with field-level
// messages instead of a round of rejected requests.
package validate

import (
	"fmt"
	"strings"

	"discheck/internal/domain"
)

// Result is the outcome of one rule check.
type Result struct {
	Passed    bool
	FieldPath string
	Message   string
}

// Rule is a single check applied to an approved disclaimer record.
type Rule interface {
	Key() string
	Check(d *domain.ApprovedDisclaimer) []Result
}

// Registry holds rules in registration order.
type Registry struct {
	rules map[string]Rule
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule to the registry. Re-registering a key replaces the rule.
func (r *Registry) Register(rule Rule) {
	if _, exists := r.rules[rule.Key()]; !exists {
		r.order = append(r.order, rule.Key())
	}
	r.rules[rule.Key()] = rule
}

// Get returns the rule for a given key, or nil if not found.
func (r *Registry) Get(key string) Rule {
	return r.rules[key]
}

// All returns the registered rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.rules[key])
	}
	return out
}

// Run applies every rule to the record and collects all results.
func (r *Registry) Run(d *domain.ApprovedDisclaimer) []Result {
	var results []Result
	for _, rule := range r.All() {
		results = append(results, rule.Check(d)...)
	}
	return results
}

// Failures filters results down to the failed checks.
func Failures(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Disclaimer runs the default rules and returns an error wrapping
// domain.ErrInvalidDisclaimer when any check fails.
func Disclaimer(d *domain.ApprovedDisclaimer) error {
	failed := Failures(DefaultRegistry().Run(d))
	if len(failed) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(failed))
	for _, f := range failed {
		msgs = append(msgs, f.Message)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidDisclaimer, strings.Join(msgs, "; "))
}
