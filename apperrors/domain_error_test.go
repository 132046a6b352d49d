package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsTo400(t *testing.T) {
	err := New("id", "The course with this id does not exist!")
	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, "id", err.Field)
	assert.Equal(t, "The course with this id does not exist!", err.Error())
}

func TestNewWithStatus(t *testing.T) {
	err := NewWithStatus("login", "nope", 401)
	assert.Equal(t, 401, err.StatusCode)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while deleting: %w", New("id", "missing"))

	var domainErr *DomainError
	require.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, "id", domainErr.Field)
}
