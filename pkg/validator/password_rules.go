package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Frequently leaked passwords, compared case-insensitively.
var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password123": true,
	"12345678":    true,
	"123456789":   true,
	"1234567890":  true,
	"qwerty123":   true,
	"qwertyuiop":  true,
	"11111111":    true,
	"00000000":    true,
	"admin123":    true,
	"welcome1":    true,
	"iloveyou":    true,
	"abc12345":    true,
	"letmein1":    true,
}

type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // distinct character classes required
}

// DefaultPasswordStrength is the dashboard account policy: 8-128 characters
// drawn from at least three of upper, lower, digit and special classes.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      128,
		RequireDigits:  true,
		MinCharClasses: 3,
	}
}

// StrongPassword validates value against config.
func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			if n < config.MinLength || (config.MaxLength > 0 && n > config.MaxLength) {
				return false
			}

			var hasUpper, hasLower, hasDigit, hasSpecial bool
			for _, r := range value {
				switch {
				case unicode.IsUpper(r):
					hasUpper = true
				case unicode.IsLower(r):
					hasLower = true
				case unicode.IsDigit(r):
					hasDigit = true
				case unicode.IsPunct(r) || unicode.IsSymbol(r):
					hasSpecial = true
				}
			}

			if (config.RequireUppercase && !hasUpper) ||
				(config.RequireLowercase && !hasLower) ||
				(config.RequireDigits && !hasDigit) ||
				(config.RequireSpecial && !hasSpecial) {
				return false
			}

			classes := 0
			for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
				if ok {
					classes++
				}
			}
			return classes >= config.MinCharClasses
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be %d-%d characters and mix letters, digits and symbols", config.MinLength, config.MaxLength),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":      field,
				"min_length": config.MinLength,
				"max_length": config.MaxLength,
			},
		},
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password is too common, please choose a different one",
			TranslationKey: "validation.password_common",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
