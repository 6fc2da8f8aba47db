package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_WrapMessage(t *testing.T) {
	err := ErrRentNotFound.WrapMessage("rent 42")

	assert.ErrorIs(t, err, ErrRentNotFound)
	assert.NotErrorIs(t, err, ErrServiceNotFound)
	assert.Equal(t, "rent 42: Rent listing not found", err.Error())

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "RENT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Rent listing not found", appErr.Message())
}

func TestDatabaseError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseError(cause, "failed to create user")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create user: connection refused", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Database execution failed", err.Message())
}
