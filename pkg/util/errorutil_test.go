package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewInvalidCredentials()

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "INVALID_CREDENTIALS", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{name: "email already exists", err: NewEmailAlreadyExists(), code: "EMAIL_ALREADY_EXISTS", status: http.StatusBadRequest},
		{name: "account disabled", err: NewAccountDisabled(), code: "ACCOUNT_DISABLED", status: http.StatusForbidden},
		{name: "invalid token", err: NewInvalidToken("invalid confirmation token"), code: "INVALID_TOKEN", status: http.StatusBadRequest},
		{name: "unauthorized", err: NewUnauthorized("missing authorization header"), code: "UNAUTHORIZED", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var domainErr *DomainError
			require.ErrorAs(t, tt.err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
			assert.Equal(t, tt.status, domainErr.HTTPStatus)
		})
	}
}
