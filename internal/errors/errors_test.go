package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("invalid input")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "invalid input")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("wallet not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.Contains(t, err.Error(), "not_found")
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("redis connection failed")
	err := InternalError("failed to store coin", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "failed to store coin")
	assert.Contains(t, err.Error(), "redis connection failed")
}

func TestInternalErrorWithoutCause(t *testing.T) {
	err := InternalError("something went wrong", nil)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Nil(t, err.Cause)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestExternalError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := ExternalError("failed to reach store", cause)

	assert.Equal(t, TypeExternal, err.Type)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
	assert.Contains(t, err.Error(), "external")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithContextChaining(t *testing.T) {
	err := ValidationError("invalid input").
		WithContext("address", "abc").
		WithContext("field", "balance")

	assert.Len(t, err.Context, 2)
	assert.Equal(t, "abc", err.Context["address"])
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := ExternalError("wrapper", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestAsStructuredError_PassThrough(t *testing.T) {
	orig := ValidationError("bad")
	got := AsStructuredError(orig)
	assert.Same(t, orig, got)
}

func TestAsStructuredError_WrapsPlainError(t *testing.T) {
	got := AsStructuredError(fmt.Errorf("plain"))
	require.NotNil(t, got)
	assert.Equal(t, TypeInternal, got.Type)
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}

func TestToResponse(t *testing.T) {
	err := ValidationError("bad input").WithField("field", "symbol")
	resp := err.ToResponse()

	assert.False(t, resp.Success)
	assert.Equal(t, "bad input", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "symbol", resp.Context["field"])
}
