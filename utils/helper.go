package utils

import (
	"strconv"
)

// ParseID converts a path parameter into a database id.
func ParseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
