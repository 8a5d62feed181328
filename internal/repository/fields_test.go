package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchColumn(t *testing.T) {
	columns := map[string]string{
		"name":     "name",
		"isActive": "is_active",
	}

	col, err := searchColumn(columns, "isActive")
	require.NoError(t, err)
	assert.Equal(t, "is_active", col)

	_, err = searchColumn(columns, "password_hash; DROP TABLE users")
	assert.ErrorIs(t, err, ErrUnsupportedSearchField)
}
