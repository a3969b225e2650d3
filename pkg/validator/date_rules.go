package validator

import (
	"fmt"
	"time"
)

// NotFutureDate validates that value is not after now.
func NotFutureDate(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(now)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date cannot be in the future",
			TranslationKey: "validation.not_future_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotPastDate validates that value falls on or after the calendar day of now.
func NotPastDate(field string, value, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			y, m, d := now.Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
			return !value.Before(today)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date cannot be in the past",
			TranslationKey: "validation.not_past_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// AgeBetween validates the age in whole years at now, counting a birthday
// only once its month and day have been reached.
func AgeBetween(field string, birthdate, now time.Time, minAge, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			age := AgeAt(birthdate, now)
			return age >= minAge && age <= maxAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("age must be between %d and %d years", minAge, maxAge),
			TranslationKey: "validation.age_between",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
				"max_age": maxAge,
			},
		},
	}
}

// AgeAt returns the number of completed years between birthdate and now.
func AgeAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}
