package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
	"github.com/t4thdd/aid-efrh/pkg/validator"
)

// DateLayout is the wire format of date fields.
const DateLayout = time.DateOnly

func text(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}

// failed renders the first failing rule, or "" when all pass.
func (c *Catalogue) failed(rules ...validator.Rule) string {
	if verr, ok := validator.First(rules...); ok {
		return c.messages.Render(verr)
	}
	return ""
}

// parseDate accepts a time.Time or a DateLayout string in the clock's
// location.
func (c *Catalogue) parseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	t, err := time.ParseInLocation(DateLayout, text(v), c.now().Location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (c *Catalogue) dateFormatError() string {
	return c.messages.Text("validation.date_format", "invalid date format (YYYY-MM-DD)")
}

func (c *Catalogue) oneOf(field string, allowed []string) formvalidation.CustomFunc {
	return func(value any, _ formvalidation.Snapshot) string {
		return c.failed(validator.InList(field, text(value), allowed))
	}
}

func (c *Catalogue) birthDate(field string, minAge, maxAge int) formvalidation.CustomFunc {
	return func(value any, _ formvalidation.Snapshot) string {
		d, ok := c.parseDate(value)
		if !ok {
			return c.dateFormatError()
		}
		now := c.now()
		return c.failed(
			validator.NotFutureDate(field, d, now),
			validator.AgeBetween(field, d, now, minAge, maxAge),
		)
	}
}

func (c *Catalogue) upcomingDate(field string) formvalidation.CustomFunc {
	return func(value any, _ formvalidation.Snapshot) string {
		d, ok := c.parseDate(value)
		if !ok {
			return c.dateFormatError()
		}
		return c.failed(validator.NotPastDate(field, d, c.now()))
	}
}

func (c *Catalogue) password(field string) formvalidation.CustomFunc {
	return func(value any, _ formvalidation.Snapshot) string {
		s := text(value)
		return c.failed(
			validator.StrongPassword(field, s, validator.DefaultPasswordStrength()),
			validator.NotCommonPassword(field, s),
		)
	}
}

// matches requires value to equal the other field. A blank other field is
// left to the dependency warning.
func (c *Catalogue) matches(other string) formvalidation.CustomFunc {
	return func(value any, form formvalidation.Snapshot) string {
		want := form.Get(other)
		if formvalidation.IsBlank(want) || text(value) == text(want) {
			return ""
		}
		return c.messages.Text("validation.password_mismatch", "passwords do not match")
	}
}
