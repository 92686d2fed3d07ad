package domain

import "time"

// ProcessedEvent is an entry of the webhook idempotency ledger, keyed by the Stripe event id.
type ProcessedEvent struct {
	ID        string    `firestore:"-"`
	Type      string    `firestore:"type"`
	Livemode  bool      `firestore:"livemode"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// Dispute is the admin review record of a Stripe dispute.
type Dispute struct {
	ID              string    `firestore:"-" json:"id"`
	ChargeID        string    `firestore:"stripeChargeId,omitempty" json:"stripeChargeId,omitempty"`
	PaymentIntentID string    `firestore:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	ClientID        string    `firestore:"clientId,omitempty" json:"clientId,omitempty"`
	Amount          float64   `firestore:"amount" json:"amount"`
	Currency        string    `firestore:"currency" json:"currency"`
	Reason          string    `firestore:"reason" json:"reason"`
	Status          string    `firestore:"status" json:"status"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}
