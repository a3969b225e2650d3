package formvalidation

import (
	"regexp"

	"github.com/t4thdd/aid-efrh/pkg/validator"
)

// Formats holds the expressions behind the Email, Phone and NationalID
// flags. They encode the deployment locale and can be replaced per engine.
type Formats struct {
	Email      *regexp.Regexp
	Phone      *regexp.Regexp
	NationalID *regexp.Regexp
}

// DefaultFormats returns the local shapes: local@domain.tld e-mails, mobile
// numbers starting with 05 and ten digits long, nine-digit identity numbers.
func DefaultFormats() Formats {
	return Formats{
		Email:      validator.EmailPattern,
		Phone:      validator.PhonePattern,
		NationalID: validator.NationalIDPattern,
	}
}

func (f Formats) withDefaults() Formats {
	d := DefaultFormats()
	if f.Email == nil {
		f.Email = d.Email
	}
	if f.Phone == nil {
		f.Phone = d.Phone
	}
	if f.NationalID == nil {
		f.NationalID = d.NationalID
	}
	return f
}
