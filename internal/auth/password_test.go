package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "pw12345678"},
		{name: "password with symbols", password: "s3cure!Pass#word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, ComparePassword(hash, tt.password))
			assert.Error(t, ComparePassword(hash, "wrong-password"))
		})
	}
}

func TestHashPasswordInvalidCost(t *testing.T) {
	_, err := HashPassword("pw12345678", bcrypt.MaxCost+1)
	assert.Error(t, err)
}
