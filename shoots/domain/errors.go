package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShootNotFound       = errors.New("Shoot not found")
	ErrMissingShootFields  = errors.New("Missing required fields: clientId, type, scheduledDate")
	ErrInvalidType         = fmt.Errorf("Invalid type. Must be one of: %s", join(Types))
	ErrInvalidStatus       = fmt.Errorf("Invalid status. Must be one of: %s", join(Statuses))
	ErrInvalidScheduleDate = errors.New("Invalid scheduledDate")
)

func join[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}

	return strings.Join(s, ", ")
}
