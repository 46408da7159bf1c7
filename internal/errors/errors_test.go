package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeUnavailable, http.StatusBadGateway},
		{CodeUpstream, http.StatusBadGateway},
		{CodeInternal, http.StatusInternalServerError},
		{Code("bogus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	err := NotFound("book 7 not found")
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, CodeUnavailable, "GET /api/authors")

	assert.True(t, Is(err, ErrUnavailable))
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "GET /api/authors")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{
		"surname": "is required",
	})

	var domainErr *Error
	require.True(t, As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["surname"])
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}
