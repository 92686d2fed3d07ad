package domain

import "errors"

var (
	ErrInvoiceNotFound = errors.New("Invoice not found")
	ErrNotPayable      = errors.New("invoice cannot be paid")
	ErrInvoiceExists   = errors.New("invoice already exists")
)
