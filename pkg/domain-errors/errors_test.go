package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("coded error returns its code", func(t *testing.T) {
		err := New(CodeNotFound, "organization not found")
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("wrapped coded error keeps the outermost code", func(t *testing.T) {
		cause := New(CodeUpstream, "read failed")
		err := Wrap(cause, CodeInternal, "aggregation failed")
		assert.Equal(t, CodeInternal, CodeOf(err))
	})

	t.Run("uncoded error defaults to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})

	t.Run("coded error found through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeValidation, "bad year"))
		assert.Equal(t, CodeValidation, CodeOf(err))
	})
}

func TestHasCode(t *testing.T) {
	err := Wrap(errors.New("conn refused"), CodeUpstream, "fetch income records")

	assert.True(t, HasCode(err, CodeUpstream))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("conn refused")
	err := Wrap(cause, CodeUpstream, "fetch failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upstream_error")
	assert.Contains(t, err.Error(), "conn refused")
}
