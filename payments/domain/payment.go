package domain

import (
	"math"
	"time"
)

type PaymentType string

const (
	TypeOneTime      PaymentType = "one_time"
	TypeSubscription PaymentType = "subscription"
	TypeRefund       PaymentType = "refund"
)

type PaymentStatus string

const (
	StatusPending           PaymentStatus = "pending"
	StatusSucceeded         PaymentStatus = "succeeded"
	StatusFailed            PaymentStatus = "failed"
	StatusRefunded          PaymentStatus = "refunded"
	StatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// Payment mirrors a Stripe charge. Refunds are stored as their own payment with a negative amount.
type Payment struct {
	ID                    string        `firestore:"-" json:"id"`
	ClientID              string        `firestore:"clientId,omitempty" json:"clientId,omitempty"`
	StripePaymentIntentID string        `firestore:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	StripeChargeID        string        `firestore:"stripeChargeId,omitempty" json:"stripeChargeId,omitempty"`
	StripeSessionID       string        `firestore:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	StripeInvoiceID       string        `firestore:"stripeInvoiceId,omitempty" json:"stripeInvoiceId,omitempty"`
	Amount                float64       `firestore:"amount" json:"amount"`
	Currency              string        `firestore:"currency" json:"currency"`
	Status                PaymentStatus `firestore:"status" json:"status"`
	Type                  PaymentType   `firestore:"type" json:"type"`
	Description           string        `firestore:"description,omitempty" json:"description,omitempty"`
	RefundedAmount        float64       `firestore:"refundedAmount,omitempty" json:"refundedAmount,omitempty"`
	FailureMessage        string        `firestore:"failureMessage,omitempty" json:"failureMessage,omitempty"`
	CreatedAt             time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

type ListFilter struct {
	ClientID string
	Status   PaymentStatus
	Type     PaymentType
	Limit    int
}

type Totals struct {
	Revenue  float64 `json:"revenue"`
	Refunded float64 `json:"refunded"`
	Pending  float64 `json:"pending"`
	Count    int     `json:"count"`
}

// ComputeTotals sums succeeded revenue, refunds and pending amounts of the listed payments.
func ComputeTotals(payments []*Payment) Totals {
	totals := Totals{Count: len(payments)}

	for _, p := range payments {
		switch {
		case p.Type == TypeRefund:
			totals.Refunded += math.Abs(p.Amount)
		case p.Status == StatusSucceeded:
			totals.Revenue += p.Amount
		case p.Status == StatusPending:
			totals.Pending += p.Amount
		}
	}

	return totals
}

// RefundStatus is the status of a charge after refunding part or all of it.
func RefundStatus(full bool) PaymentStatus {
	if full {
		return StatusRefunded
	}

	return StatusPartiallyRefunded
}
