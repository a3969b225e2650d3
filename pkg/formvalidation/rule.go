package formvalidation

import (
	"regexp"
	"sort"
)

// CustomFunc checks a value against the whole form and returns an error
// message, or "" when the value is acceptable.
type CustomFunc func(value any, form Snapshot) string

// Rule is the set of constraints attached to one field. Nil pointers and
// false flags mean the constraint is not set.
type Rule struct {
	Required bool

	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp

	Min *float64
	Max *float64

	Email      bool
	Phone      bool
	NationalID bool

	Custom CustomFunc

	// Dependencies name fields that must hold a value before this field is
	// actionable. A missing dependency produces a warning, not an error.
	Dependencies []string
}

// RuleSet maps field names to rules. Names are opaque keys; dotted paths
// such as "detailedAddress.city" are not interpreted.
type RuleSet map[string]Rule

// Fields returns the field names in lexical order.
func (rs RuleSet) Fields() []string {
	fields := make([]string, 0, len(rs))
	for f := range rs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Int returns a pointer to n, for optional rule bounds.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for optional rule bounds.
func Float(f float64) *float64 { return &f }

// Snapshot holds the current value of every form field.
type Snapshot map[string]any

// Get returns the value stored under field, or nil.
func (s Snapshot) Get(field string) any {
	return s[field]
}

// Flatten converts nested form data into a Snapshot keyed by dotted paths:
// {"detailedAddress": {"city": "Gaza"}} becomes {"detailedAddress.city": "Gaza"}.
// Only leaf values are kept.
func Flatten(data map[string]any) Snapshot {
	out := make(Snapshot, len(data))
	flattenInto(out, "", data)
	return out
}

func flattenInto(out Snapshot, prefix string, data map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}
