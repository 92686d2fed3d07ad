package domain

import "errors"

var (
	ErrPaymentNotFound = errors.New("Payment not found")
	ErrPaymentExists   = errors.New("payment already recorded")
)
