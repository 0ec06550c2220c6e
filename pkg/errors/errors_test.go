package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		err      *AppError
		expected int
	}{
		{NewNotFound("medication", nil), http.StatusNotFound},
		{NewBadRequest("bad input", nil), http.StatusBadRequest},
		{NewOutOfRange(5, 3), http.StatusBadRequest},
		{NewNotImplemented("export"), http.StatusNotImplemented},
		{NewInternal(fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.StatusCode(), tt.err.Message)
	}
}

func TestErrorKindPredicates(t *testing.T) {
	outOfRange := NewOutOfRange(0, 0)
	notImpl := NewNotImplemented("reports")

	assert.True(t, IsOutOfRange(outOfRange))
	assert.False(t, IsOutOfRange(notImpl))
	assert.True(t, IsNotImplemented(notImpl))
	assert.False(t, IsNotImplemented(outOfRange))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("queue op failed: %w", outOfRange)
	assert.True(t, IsOutOfRange(wrapped))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewBadRequest("invalid case", cause)

	assert.Contains(t, err.Error(), "invalid case")
	assert.Contains(t, err.Error(), "underlying")
	assert.Equal(t, cause, err.Unwrap())
}
