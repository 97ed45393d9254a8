package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected int
	}{
		{name: "invalidinput", err: InvalidInput("bad"), expected: http.StatusBadRequest},
		{name: "notfound", err: NotFound("missing"), expected: http.StatusNotFound},
		{name: "upstream", err: Upstream("riot", errors.New("429")), expected: http.StatusInternalServerError},
		{name: "internal", err: Internal("db", errors.New("closed")), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.StatusCode())
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("failed to fetch account data", cause)

	assert.Equal(t, "failed to fetch account data: connection refused", err.Error())
	assert.Equal(t, "connection refused", err.Details())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Same(t, err, From(wrapped, "fallback"))
}

func TestFromPlainError(t *testing.T) {
	err := From(errors.New("boom"), "internal server error")

	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, "internal server error", err.Message)
	assert.Equal(t, "boom", err.Details())
	assert.Equal(t, "", NotFound("x").Details())
}
