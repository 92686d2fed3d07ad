package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeadNotFound         = errors.New("Lead not found")
	ErrMissingLeadFields    = errors.New("Missing required fields: name, email")
	ErrMissingBookingField  = errors.New("Name and email are required")
	ErrInvalidStatus        = fmt.Errorf("Invalid status. Must be one of: %s", joinStatuses())
	ErrLeadAlreadyConverted = errors.New("Lead already converted")
)

func joinStatuses() string {
	values := make([]string, len(Statuses))
	for i, s := range Statuses {
		values[i] = string(s)
	}

	return strings.Join(values, ", ")
}
