package domain

import (
	"errors"
	"time"
)

// Metadata keys set on Stripe objects created by the back office.
const (
	MetadataClientID = "clientId"
	MetadataTier     = "tier"
	MetadataSource   = "source"
	MetadataOrigin   = "origin"
)

// OriginCheckout marks subscriptions opened by a hosted checkout; their first
// payment is settled by checkout.session.completed.
const OriginCheckout = "checkout"

const (
	SourceBackOffice     = "gettupp-os"
	SourcePublicCheckout = "public_checkout"
)

const (
	CheckoutSuccessPath = "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	CheckoutCancelPath  = "/checkout/cancelled"
)

var (
	ErrInvalidSignature  = errors.New("Webhook signature verification failed")
	ErrMissingSignature  = errors.New("Missing stripe-signature header")
	ErrInvalidProduct    = errors.New("Invalid product")
	ErrMissingProduct    = errors.New("Missing required field: tier/product")
	ErrInvalidRefund     = errors.New("Invalid refund reason. Must be one of: duplicate, fraudulent, requested_by_customer")
	ErrInvalidAction     = errors.New("Invalid action. Must be one of: cancel, cancel_immediately, resume, change_plan")
	ErrMissingPriceID    = errors.New("priceId is required for change_plan")
	ErrNoClientSecret    = errors.New("subscription has no payment client secret")
	ErrMissingAPIKey     = errors.New("stripe api key is not configured")
	ErrMissingWebhookKey = errors.New("stripe webhook secret is not configured")
)

// CheckoutSession is what the checkout endpoints return to the browser.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type PortalSession struct {
	URL string `json:"url"`
}

type Refund struct {
	ID              string    `json:"id"`
	PaymentIntentID string    `json:"paymentIntentId"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Created         time.Time `json:"created"`
}

// RefundReasons are the reasons Stripe accepts on a refund.
var RefundReasons = []string{"duplicate", "fraudulent", "requested_by_customer"}

func IsValidRefundReason(reason string) bool {
	for _, r := range RefundReasons {
		if r == reason {
			return true
		}
	}

	return false
}

type SubscriptionAction string

const (
	ActionCancel            SubscriptionAction = "cancel"
	ActionCancelImmediately SubscriptionAction = "cancel_immediately"
	ActionResume            SubscriptionAction = "resume"
	ActionChangePlan        SubscriptionAction = "change_plan"
)

// NewSubscription is returned when a subscription is opened; the client secret
// lets the browser confirm the first payment.
type NewSubscription struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
	Status         string `json:"status"`
}

type SubscriptionUpdate struct {
	SubscriptionID    string `json:"subscriptionId"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
}

// SetupPrice is one tier product created by the setup command.
type SetupPrice struct {
	Tier      string `json:"tier"`
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId"`
}
