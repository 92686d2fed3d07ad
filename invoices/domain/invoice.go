package domain

import (
	"time"

	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

const DefaultCurrency = "usd"

type Invoice struct {
	ID              string        `firestore:"-" json:"id"`
	ClientID        string        `firestore:"clientId" json:"clientId"`
	StripeSessionID string        `firestore:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	StripeInvoiceID string        `firestore:"stripeInvoiceId,omitempty" json:"stripeInvoiceId,omitempty"`
	Tier            tiers.Tier    `firestore:"tier,omitempty" json:"tier,omitempty"`
	Amount          float64       `firestore:"amount" json:"amount"`
	Currency        string        `firestore:"currency" json:"currency"`
	Status          InvoiceStatus `firestore:"status" json:"status"`
	Description     string        `firestore:"description,omitempty" json:"description,omitempty"`
	PaidAt          *time.Time    `firestore:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt       time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

type ListFilter struct {
	Status   InvoiceStatus
	ClientID string
	Limit    int
}

// PackageDescription is the line shown on a checkout invoice, e.g. "GettUpp VIP Package".
func PackageDescription(tier tiers.Tier) string {
	return "GettUpp " + tier.Title() + " Package"
}
