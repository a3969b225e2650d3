package forms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4thdd/aid-efrh/modules/forms"
	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newCatalogue() *forms.Catalogue {
	return forms.New(
		forms.WithMessages(formvalidation.DefaultMessages("en")),
		forms.WithClock(func() time.Time { return fixedNow }),
	)
}

func newEngine(t *testing.T, rules formvalidation.RuleSet) *formvalidation.Engine {
	t.Helper()
	e := formvalidation.New(rules, formvalidation.WithLanguage("en"), formvalidation.WithDebounce(0))
	t.Cleanup(e.Close)
	return e
}

func TestNamesAndLookup(t *testing.T) {
	names := forms.Names()
	assert.Equal(t, []string{
		"alert", "beneficiary", "courier", "delivery-task",
		"organization", "package-template", "user",
	}, names)

	cat := newCatalogue()
	for _, name := range names {
		rules, ok := cat.Lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, rules.Fields(), name)
	}

	_, ok := cat.Lookup("nope")
	assert.False(t, ok)
}

func TestBeneficiary(t *testing.T) {
	valid := formvalidation.Flatten(map[string]any{
		"name":       "Ahmad Saleh",
		"nationalId": "123456789",
		"phone":      "0591234567",
		"birthDate":  "1990-04-01",
		"familySize": 6,
		"detailedAddress": map[string]any{
			"governorate": "Gaza",
			"city":        "Gaza",
			"district":    "Rimal",
		},
	})

	t.Run("valid", func(t *testing.T) {
		res := newEngine(t, newCatalogue().Beneficiary()).ValidateForm(valid)
		assert.True(t, res.IsValid, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("birth date", func(t *testing.T) {
		e := newEngine(t, newCatalogue().Beneficiary())
		tests := []struct {
			value string
			want  string
		}{
			{"1990-04-01", ""},
			{"2025-06-15", ""},
			{"1990/04/01", "Invalid date format (YYYY-MM-DD)"},
			{"2025-06-16", "Date cannot be in the future"},
			{"1900-01-01", "Age must be between 0 and 120 years"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, e.ValidateField("birthDate", tt.value, valid).Error, tt.value)
		}
	})

	t.Run("family size bounds", func(t *testing.T) {
		e := newEngine(t, newCatalogue().Beneficiary())
		assert.Equal(t, "Value must be at least 1", e.ValidateField("familySize", 0, valid).Error)
		assert.Equal(t, "Value must be at most 50", e.ValidateField("familySize", "51", valid).Error)
		assert.Empty(t, e.ValidateField("familySize", 1, valid).Error)
	})

	t.Run("address dependencies", func(t *testing.T) {
		e := newEngine(t, newCatalogue().Beneficiary())
		form := formvalidation.Snapshot{"detailedAddress.city": "Gaza"}

		res := e.ValidateField("detailedAddress.district", "Rimal", form)
		assert.Empty(t, res.Error)
		assert.Empty(t, res.Warning)

		res = e.ValidateField("detailedAddress.city", "Gaza", form)
		assert.Equal(t, "Please fill in detailedAddress.governorate first", res.Warning)
	})

	t.Run("optional contact fields", func(t *testing.T) {
		e := newEngine(t, newCatalogue().Beneficiary())
		assert.Empty(t, e.ValidateField("alternativePhone", "", valid).Error)
		assert.NotEmpty(t, e.ValidateField("alternativePhone", "123", valid).Error)
		assert.Equal(t, "Invalid email address", e.ValidateField("email", "nope", valid).Error)
	})
}

func TestChoiceFields(t *testing.T) {
	cat := newCatalogue()
	tests := []struct {
		form  formvalidation.RuleSet
		field string
		ok    []string
		bad   string
	}{
		{cat.Organization(), "type", forms.OrganizationTypes, "company"},
		{cat.PackageTemplate(), "type", forms.PackageTypes, "toys"},
		{cat.DeliveryTask(), "priority", forms.TaskPriorities, "asap"},
		{cat.Alert(), "severity", forms.AlertSeverities, "fatal"},
	}
	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.bad, func(t *testing.T) {
			e := newEngine(t, tt.form)
			for _, v := range tt.ok {
				assert.Empty(t, e.ValidateField(tt.field, v, nil).Error, v)
			}
			assert.Equal(t, "Selected value is not allowed", e.ValidateField(tt.field, tt.bad, nil).Error)
		})
	}
}

func TestPackageTemplate(t *testing.T) {
	e := newEngine(t, newCatalogue().PackageTemplate())

	res := e.ValidateForm(formvalidation.Snapshot{
		"name":          "Food basket",
		"type":          "food",
		"contents":      "rice, oil, flour",
		"estimatedCost": "150.5",
		"weight":        2000,
	})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{"weight": "Value must be at most 1000"}, res.Errors)
}

func TestCourier_VehicleNumber(t *testing.T) {
	e := newEngine(t, newCatalogue().Courier())

	assert.Empty(t, e.ValidateField("vehicleNumber", "12-345-67", nil).Error)
	assert.Equal(t, "Invalid format", e.ValidateField("vehicleNumber", "AB-12", nil).Error)
}

func TestDeliveryTask_ScheduledDate(t *testing.T) {
	e := newEngine(t, newCatalogue().DeliveryTask())

	assert.Empty(t, e.ValidateField("scheduledDate", "2025-06-15", nil).Error, "today is allowed")
	assert.Empty(t, e.ValidateField("scheduledDate", "2025-07-01", nil).Error)
	assert.Equal(t, "Date cannot be in the past", e.ValidateField("scheduledDate", "2025-06-14", nil).Error)
	assert.Equal(t, "Invalid date format (YYYY-MM-DD)", e.ValidateField("scheduledDate", "tomorrow", nil).Error)
	assert.Equal(t, "This field is required", e.ValidateField("scheduledDate", "", nil).Error)
}

func TestAlert_Lengths(t *testing.T) {
	e := newEngine(t, newCatalogue().Alert())

	assert.Equal(t, "Must be at least 5 characters", e.ValidateField("title", "Hi", nil).Error)
	assert.Equal(t, "Must be at least 10 characters", e.ValidateField("message", "Too short", nil).Error)
	assert.Empty(t, e.ValidateField("message", "Stock is running low", nil).Error)
}

func TestUser_Passwords(t *testing.T) {
	e := newEngine(t, newCatalogue().User())

	t.Run("strength", func(t *testing.T) {
		assert.Equal(t, "Must be at least 8 characters", e.ValidateField("password", "Ab1!", nil).Error)
		assert.Contains(t, e.ValidateField("password", "abcdefgh", nil).Error, "mix letters, digits and symbols")
		assert.Equal(t, "Password is too common, please choose another one",
			e.ValidateField("password", "Password123", nil).Error)
		assert.Empty(t, e.ValidateField("password", "Relief#2025", nil).Error)
	})

	t.Run("confirmation warns until password is filled", func(t *testing.T) {
		res := e.ValidateField("confirmPassword", "Relief#2025", formvalidation.Snapshot{"password": ""})
		assert.Empty(t, res.Error)
		assert.Equal(t, "Please fill in password first", res.Warning)
	})

	t.Run("confirmation must match", func(t *testing.T) {
		form := formvalidation.Snapshot{"password": "Relief#2025"}
		assert.Equal(t, "Passwords do not match", e.ValidateField("confirmPassword", "Relief#2024", form).Error)
		assert.True(t, e.ValidateField("confirmPassword", "Relief#2025", form).OK())
	})
}

func TestDefaultMessagesAreArabic(t *testing.T) {
	rules := forms.New(forms.WithClock(func() time.Time { return fixedNow })).User()

	form := formvalidation.Snapshot{"password": "Relief#2025"}
	msg := rules["confirmPassword"].Custom("other", form)
	assert.NotEmpty(t, msg)
	assert.NotEqual(t, "Passwords do not match", msg)
}
