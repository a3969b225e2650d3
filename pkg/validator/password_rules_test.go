package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t4thdd/aid-efrh/pkg/validator"
)

func TestStrongPassword(t *testing.T) {
	cfg := validator.DefaultPasswordStrength()

	t.Run("accepts a mixed password", func(t *testing.T) {
		assert.True(t, validator.StrongPassword("password", "Relief2024!", cfg).Check())
		assert.True(t, validator.StrongPassword("password", "relief2024!", cfg).Check())
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		assert.False(t, validator.StrongPassword("password", "Ab1!", cfg).Check())
	})

	t.Run("rejects passwords without digits", func(t *testing.T) {
		assert.False(t, validator.StrongPassword("password", "Relief-Aid!", cfg).Check())
	})

	t.Run("rejects too few character classes", func(t *testing.T) {
		assert.False(t, validator.StrongPassword("password", "relief2024", cfg).Check())
	})
}

func TestNotCommonPassword(t *testing.T) {
	assert.False(t, validator.NotCommonPassword("password", "Password123").Check())
	assert.True(t, validator.NotCommonPassword("password", "Gaza-Relief-77").Check())
}
