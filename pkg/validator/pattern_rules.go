package validator

import (
	"regexp"
)

// MatchesPattern validates value against a precompiled expression.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": patternString(re),
			},
		},
	}
}

// MatchesRegex compiles pattern on each call; prefer MatchesPattern in hot paths.
func MatchesRegex(field, value, pattern string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern))
}

func patternString(re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	return re.String()
}
