package repository

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSearchField is returned when a caller asks to filter by a
// field outside the enumerated whitelist. Client-supplied names never reach
// query text.
var ErrUnsupportedSearchField = errors.New("unsupported search field")

func searchColumn(columns map[string]string, field string) (string, error) {
	col, ok := columns[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSearchField, field)
	}
	return col, nil
}
