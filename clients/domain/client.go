package domain

import (
	"time"

	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type ClientStatus string

const (
	StatusPending   ClientStatus = "pending"
	StatusActive    ClientStatus = "active"
	StatusPastDue   ClientStatus = "past_due"
	StatusCompleted ClientStatus = "completed"
	StatusCancelled ClientStatus = "cancelled"
)

// AdminStatuses are the statuses an admin may set by hand. past_due is only
// reached through billing events.
var AdminStatuses = []ClientStatus{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

const (
	SourceDirect         = "direct"
	SourceLead           = "lead_conversion"
	SourcePublicCheckout = "public_checkout"
)

type Client struct {
	ID                    string       `firestore:"-" json:"id"`
	Name                  string       `firestore:"name" json:"name"`
	Email                 string       `firestore:"email" json:"email"`
	Phone                 string       `firestore:"phone,omitempty" json:"phone,omitempty"`
	Instagram             string       `firestore:"instagram,omitempty" json:"instagram,omitempty"`
	Tier                  tiers.Tier   `firestore:"tier" json:"tier"`
	Status                ClientStatus `firestore:"status" json:"status"`
	AmountPaid            float64      `firestore:"amountPaid" json:"amountPaid"`
	StripeCustomerID      string       `firestore:"stripeCustomerId,omitempty" json:"stripeCustomerId,omitempty"`
	StripePaymentIntentID string       `firestore:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	StripeSubscriptionID  string       `firestore:"stripeSubscriptionId,omitempty" json:"stripeSubscriptionId,omitempty"`
	SubscriptionStatus    string       `firestore:"subscriptionStatus,omitempty" json:"subscriptionStatus,omitempty"`
	CurrentPeriodStart    *time.Time   `firestore:"currentPeriodStart,omitempty" json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd      *time.Time   `firestore:"currentPeriodEnd,omitempty" json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd     bool         `firestore:"cancelAtPeriodEnd" json:"cancelAtPeriodEnd"`
	LeadID                string       `firestore:"leadId,omitempty" json:"leadId,omitempty"`
	Source                string       `firestore:"source" json:"source"`
	Notes                 string       `firestore:"notes,omitempty" json:"notes,omitempty"`
	ConvertedAt           *time.Time   `firestore:"convertedAt,omitempty" json:"convertedAt,omitempty"`
	CreatedAt             time.Time    `firestore:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time    `firestore:"updatedAt" json:"updatedAt"`
}

func (s ClientStatus) IsAdminStatus() bool {
	for _, v := range AdminStatuses {
		if s == v {
			return true
		}
	}

	return false
}

type ListFilter struct {
	Status ClientStatus
	Tier   tiers.Tier
	Limit  int
}

// PaymentEffect is what a settled payment changes on its client.
type PaymentEffect struct {
	// AmountPaid is added to the client's amount paid, which never drops below zero.
	AmountPaid float64
	Note       string
}

// AppendNote adds a line to existing notes.
func AppendNote(notes, note string) string {
	if notes == "" {
		return note
	}

	return notes + "\n" + note
}
