package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("sale", "abc"), CodeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"conflict", NewConflict("referenced"), CodeConflict, http.StatusConflict},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantStatus, GetHTTPStatus(tt.err))
		})
	}
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("delete sale: %w", NewNotFound("sale", "x"))

	assert.True(t, IsNotFound(err))
	assert.True(t, IsAppError(err))

	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestIsNotFoundRejectsOtherKinds(t *testing.T) {
	assert.False(t, IsNotFound(NewValidation("bad")))
	assert.False(t, IsNotFound(errors.New("not found"))) // plain text is not a kind
}

func TestNotFoundMessageNamesEntity(t *testing.T) {
	err := NewNotFound("buyer", "b1")
	assert.Equal(t, "buyer not found", err.Message)
	assert.Equal(t, "b1", err.Details["id"])
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("fk violation")
	err := NewConflict("cannot delete").
		WithDetail("entity", "towns").
		WithCause(cause)

	assert.Equal(t, "towns", err.Details["entity"])
	assert.ErrorIs(t, err, cause)
}

func TestGetHTTPStatusUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("mystery")))
}
