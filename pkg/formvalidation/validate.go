package formvalidation

import (
	"fmt"

	"github.com/t4thdd/aid-efrh/pkg/validator"
)

// Result is the outcome of validating one field. At most one of Error and
// Warning is set.
type Result struct {
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// OK reports whether the field passed without error or warning.
func (r Result) OK() bool {
	return r.Error == "" && r.Warning == ""
}

// ValidateField validates value against the rule for field using the
// bundled Arabic messages and default formats. Fields without a rule always
// pass. It has no side effects.
func ValidateField(rules RuleSet, field string, value any, form Snapshot) Result {
	c := checker{formats: DefaultFormats(), messages: DefaultMessages(DefaultLanguage)}
	return c.check(rules, field, value, form)
}

type checker struct {
	formats       Formats
	messages      Messages
	strictNumeric bool
}

// check evaluates, in order: required, blank short-circuit, string shape,
// numeric bounds, custom, dependencies. The first failing step wins.
func (c checker) check(rules RuleSet, field string, value any, form Snapshot) Result {
	rule, ok := rules[field]
	if !ok {
		return Result{}
	}

	if IsBlank(value) {
		if rule.Required {
			// value is blank, so the required check fails
			return c.fail(validator.Required(field, "").Error)
		}
		return Result{}
	}

	if s, ok := asString(value); ok {
		if verr, failed := validator.First(c.stringRules(rule, field, s)...); failed {
			return c.fail(verr)
		}
	}

	if rule.Min != nil || rule.Max != nil {
		if n, ok := asNumber(value); ok {
			if verr, failed := validator.First(numericRules(rule, field, n)...); failed {
				return c.fail(verr)
			}
		} else if c.strictNumeric {
			return c.fail(validator.NumericString(field, fmt.Sprint(value)).Error)
		}
	}

	if rule.Custom != nil {
		if msg := rule.Custom(value, form); msg != "" {
			return Result{Error: msg}
		}
	}

	for _, dep := range rule.Dependencies {
		if IsBlank(form.Get(dep)) {
			return Result{Warning: c.messages.Render(dependencyError(field, dep))}
		}
	}

	return Result{}
}

func (c checker) fail(verr validator.ValidationError) Result {
	return Result{Error: c.messages.Render(verr)}
}

func (c checker) stringRules(rule Rule, field, s string) []validator.Rule {
	var rs []validator.Rule
	if rule.MinLength != nil {
		rs = append(rs, validator.MinLen(field, s, *rule.MinLength))
	}
	if rule.MaxLength != nil {
		rs = append(rs, validator.MaxLen(field, s, *rule.MaxLength))
	}
	if rule.Email {
		rs = append(rs, validator.ValidEmailPattern(field, s, c.formats.Email))
	}
	if rule.Phone {
		rs = append(rs, validator.ValidPhonePattern(field, s, c.formats.Phone))
	}
	if rule.NationalID {
		rs = append(rs, validator.ValidNationalIDPattern(field, s, c.formats.NationalID))
	}
	if rule.Pattern != nil {
		rs = append(rs, validator.MatchesPattern(field, s, rule.Pattern))
	}
	return rs
}

func numericRules(rule Rule, field string, n float64) []validator.Rule {
	var rs []validator.Rule
	if rule.Min != nil {
		rs = append(rs, validator.Min(field, n, *rule.Min))
	}
	if rule.Max != nil {
		rs = append(rs, validator.Max(field, n, *rule.Max))
	}
	return rs
}

func dependencyError(field, dep string) validator.ValidationError {
	return validator.ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("please fill in %s first", dep),
		TranslationKey: "validation.dependency",
		TranslationValues: map[string]any{
			"field":      field,
			"dependency": dep,
		},
	}
}
