package validator

import "regexp"

// NationalIDPattern accepts identity numbers of exactly nine digits.
var NationalIDPattern = regexp.MustCompile(`^\d{9}$`)

func ValidNationalID(field, value string) Rule {
	return ValidNationalIDPattern(field, value, NationalIDPattern)
}

// ValidNationalIDPattern validates an identity number against re. A nil re
// falls back to NationalIDPattern.
func ValidNationalIDPattern(field, value string, re *regexp.Regexp) Rule {
	return formatRule(field, value, orDefault(re, NationalIDPattern),
		"must be exactly 9 digits", "validation.national_id")
}
