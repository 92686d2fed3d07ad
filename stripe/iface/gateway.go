//go:generate mockery --output=./mocks --all
package iface

import (
	"github.com/stripe/stripe-go/v74"
)

// Gateway is the part of the Stripe API the back office calls.
type Gateway interface {
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	NewPortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
	NewRefund(params *stripe.RefundParams) (*stripe.Refund, error)
	ListRefunds(params *stripe.RefundListParams) ([]*stripe.Refund, error)
	GetCharge(id string) (*stripe.Charge, error)
	NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	GetSubscription(id string) (*stripe.Subscription, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error)
	NewProduct(params *stripe.ProductParams) (*stripe.Product, error)
	NewPrice(params *stripe.PriceParams) (*stripe.Price, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}
