package forms

import (
	"sort"
	"time"

	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
)

// Form names accepted by Lookup.
const (
	FormBeneficiary     = "beneficiary"
	FormOrganization    = "organization"
	FormPackageTemplate = "package-template"
	FormCourier         = "courier"
	FormDeliveryTask    = "delivery-task"
	FormAlert           = "alert"
	FormUser            = "user"
)

var registry = map[string]func(*Catalogue) formvalidation.RuleSet{
	FormBeneficiary:     (*Catalogue).Beneficiary,
	FormOrganization:    (*Catalogue).Organization,
	FormPackageTemplate: (*Catalogue).PackageTemplate,
	FormCourier:         (*Catalogue).Courier,
	FormDeliveryTask:    (*Catalogue).DeliveryTask,
	FormAlert:           (*Catalogue).Alert,
	FormUser:            (*Catalogue).User,
}

// Catalogue builds form rule sets.
type Catalogue struct {
	messages formvalidation.Messages
	now      func() time.Time
}

// Option configures a Catalogue.
type Option func(*Catalogue)

// WithMessages sets the messages used by custom checks. Defaults to the
// bundled Arabic catalogue.
func WithMessages(m formvalidation.Messages) Option {
	return func(c *Catalogue) { c.messages = m }
}

// WithClock sets the time source for date checks.
func WithClock(now func() time.Time) Option {
	return func(c *Catalogue) {
		if now != nil {
			c.now = now
		}
	}
}

func New(opts ...Option) *Catalogue {
	c := &Catalogue{
		messages: formvalidation.DefaultMessages(formvalidation.DefaultLanguage),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the rule set registered under name.
func (c *Catalogue) Lookup(name string) (formvalidation.RuleSet, bool) {
	build, ok := registry[name]
	if !ok {
		return nil, false
	}
	return build(c), true
}

// Names lists the registered form names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
