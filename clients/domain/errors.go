package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrClientNotFound      = errors.New("Client not found")
	ErrMissingClientFields = errors.New("Missing required fields: name, email, tier")
	ErrInvalidStatus       = fmt.Errorf("Invalid status. Must be one of: %s", joinStatuses())
	ErrNoStripeCustomer    = errors.New("Client has no Stripe customer")
	ErrInvalidTransition   = errors.New("invalid client status transition")
)

func joinStatuses() string {
	values := make([]string, len(AdminStatuses))
	for i, s := range AdminStatuses {
		values[i] = string(s)
	}

	return strings.Join(values, ", ")
}
