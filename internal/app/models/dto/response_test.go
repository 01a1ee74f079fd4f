package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccessResponseSuccessFlag(t *testing.T) {
	ok := NewSuccessResponse(http.StatusCreated, "payload", "created")
	assert.True(t, ok.Success)
	assert.Equal(t, http.StatusCreated, ok.StatusCode)
	assert.Equal(t, "payload", ok.Data)
	assert.False(t, ok.Timestamp.IsZero())

	notOK := NewSuccessResponse(http.StatusBadRequest, nil, "rejected")
	assert.False(t, notOK.Success)
}

func TestNewErrorResponseEnvelope(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "All fields are required")
	response := NewErrorResponse(http.StatusBadRequest, detail)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.False(t, response.Success)
	assert.Equal(t, "All fields are required", response.Message)
	assert.NotNil(t, response.Errors)
	assert.Same(t, detail, response.Error)
}

func TestHandleValidationErrorFormatsFieldErrors(t *testing.T) {
	type registerForm struct {
		FullName string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	validate := validator.New()

	err := validate.Struct(registerForm{Email: "jane@example.com", Password: "long-enough"})
	require.Error(t, err)
	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "FullName is required", detail.Message)
	assert.Equal(t, "FullName", detail.Field)

	err = validate.Struct(registerForm{FullName: "Jane", Email: "not-an-email", Password: "long-enough"})
	require.Error(t, err)
	detail = HandleValidationError(err)
	assert.Equal(t, "Email must be a valid email address", detail.Message)

	err = validate.Struct(registerForm{FullName: "Jane", Email: "jane@example.com", Password: "short"})
	require.Error(t, err)
	detail = HandleValidationError(err)
	assert.Equal(t, "Password must be at least 8", detail.Message)
}

func TestHandleValidationErrorNonValidatorError(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))

	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, "unexpected EOF", detail.Details)
}
