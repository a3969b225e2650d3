package validator

import (
	"regexp"
)

var (
	// EmailPattern accepts local@domain.tld shapes: one @, a dot after it, no
	// whitespace. \p{Z} covers Unicode spaces such as U+00A0 that \s misses.
	EmailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

	// PhonePattern accepts local mobile numbers: 05 followed by eight digits.
	PhonePattern = regexp.MustCompile(`^05\d{8}$`)
)

func ValidEmail(field, value string) Rule {
	return ValidEmailPattern(field, value, EmailPattern)
}

// ValidEmailPattern validates an e-mail address against re. A nil re falls
// back to EmailPattern.
func ValidEmailPattern(field, value string, re *regexp.Regexp) Rule {
	return formatRule(field, value, orDefault(re, EmailPattern),
		"must be a valid email address", "validation.email")
}

func ValidPhone(field, value string) Rule {
	return ValidPhonePattern(field, value, PhonePattern)
}

// ValidPhonePattern validates a phone number against re. A nil re falls back
// to PhonePattern.
func ValidPhonePattern(field, value string, re *regexp.Regexp) Rule {
	return formatRule(field, value, orDefault(re, PhonePattern),
		"must be a valid phone number starting with 05 and 10 digits long", "validation.phone")
}

func formatRule(field, value string, re *regexp.Regexp, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func orDefault(re, def *regexp.Regexp) *regexp.Regexp {
	if re == nil {
		return def
	}
	return re
}
