package domain

import (
	"time"

	tiers "github.com/gettupp/backoffice/tiers/domain"
)

// Subscription is the stored copy of a Stripe subscription, keyed by the Stripe id.
type Subscription struct {
	ID                 string     `firestore:"-" json:"id"`
	ClientID           string     `firestore:"clientId,omitempty" json:"clientId,omitempty"`
	StripeCustomerID   string     `firestore:"stripeCustomerId" json:"stripeCustomerId"`
	Status             string     `firestore:"status" json:"status"`
	PriceID            string     `firestore:"priceId,omitempty" json:"priceId,omitempty"`
	Tier               tiers.Tier `firestore:"tier,omitempty" json:"tier,omitempty"`
	CurrentPeriodStart *time.Time `firestore:"currentPeriodStart,omitempty" json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd   *time.Time `firestore:"currentPeriodEnd,omitempty" json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd  bool       `firestore:"cancelAtPeriodEnd" json:"cancelAtPeriodEnd"`
	CanceledAt         *time.Time `firestore:"canceledAt,omitempty" json:"canceledAt,omitempty"`
	UpdatedAt          time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

type ListFilter struct {
	ClientID string
	Status   string
	Limit    int
}
