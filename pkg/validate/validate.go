// Package validate evaluates field-level rules against a single value.
//
// A Descriptor is either Text or Numeric, and each kind carries only the
// rules that apply to it. Validate never fails: a rule violation is reported
// as false and it is up to the caller to reject the submission.
package validate

import (
	"strings"
	"unicode/utf8"
)

// Descriptor is one value plus the rules that apply to it. The only
// implementations are Text and Numeric.
type Descriptor interface {
	valid() bool
}

// Text describes a textual value. Lengths are counted in characters.
type Text struct {
	Value     string
	Required  bool // trimmed value must be non-empty
	MinLength *int
	MaxLength *int
}

// Numeric describes a numeric value. Bounds are inclusive.
//
// Required is accepted for symmetry with Text but is always satisfied: a
// number has no empty form, so numeric presence must be expressed with Min
// or Max.
type Numeric struct {
	Value    float64
	Required bool
	Min      *float64
	Max      *float64
}

// Validate reports whether every rule set on d holds. A nil descriptor has
// no rules and is valid.
func Validate(d Descriptor) bool {
	if d == nil {
		return true
	}
	return d.valid()
}

// All reports whether every descriptor is valid. Every descriptor is
// evaluated; there is no short-circuit.
func All(ds ...Descriptor) bool {
	ok := true
	for _, d := range ds {
		ok = Validate(d) && ok
	}
	return ok
}

func (t Text) valid() bool {
	ok := true
	if t.Required {
		ok = ok && strings.TrimSpace(t.Value) != ""
	}
	n := utf8.RuneCountInString(t.Value)
	if t.MinLength != nil {
		ok = ok && n >= *t.MinLength
	}
	if t.MaxLength != nil {
		ok = ok && n <= *t.MaxLength
	}
	return ok
}

// NaN fails every comparison, so a NaN value fails any bound that is set.
func (n Numeric) valid() bool {
	ok := true
	if n.Min != nil {
		ok = ok && n.Value >= *n.Min
	}
	if n.Max != nil {
		ok = ok && n.Value <= *n.Max
	}
	return ok
}

// Int returns a pointer to n, for setting MinLength and MaxLength.
func Int(n int) *int {
	return &n
}

// Float returns a pointer to f, for setting Min and Max.
func Float(f float64) *float64 {
	return &f
}
