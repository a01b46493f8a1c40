package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	dErrors "veritas/pkg/domain-errors"
)

func TestParseOrgID(t *testing.T) {
	t.Run("valid UUID parses", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := ParseOrgID(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := ParseOrgID("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("non-UUID input rejected", func(t *testing.T) {
		_, err := ParseOrgID("charity-42")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseFinancialYear(t *testing.T) {
	t.Run("plain year parses", func(t *testing.T) {
		y, err := ParseFinancialYear("2024")
		assert.NoError(t, err)
		assert.Equal(t, 2024, y.Int())
	})

	t.Run("negative year rejected", func(t *testing.T) {
		_, err := ParseFinancialYear("-3")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("non-integer rejected", func(t *testing.T) {
		_, err := ParseFinancialYear("twenty24")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("implausible year rejected", func(t *testing.T) {
		_, err := ParseFinancialYear("1066")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
