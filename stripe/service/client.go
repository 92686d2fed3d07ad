package service

import (
	"context"
	"encoding/json"
	"os"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/gettupp/backoffice/secretmanager"
	"github.com/gettupp/backoffice/stripe/domain"
)

// Client wraps the Stripe API together with the webhook signing secret.
type Client struct {
	*client.API
	webhookSignKey string
}

type stripeSecret struct {
	APIKey         string `json:"api_key"`
	WebhookSignKey string `json:"webhook_sign_key"`
}

func NewStripeClient(ctx context.Context) (*Client, error) {
	stripeSecret, err := getStripeSecret(ctx)
	if err != nil {
		return nil, err
	}

	// Init stripe client
	var stripeClient client.API

	stripeClient.Init(stripeSecret.APIKey, nil)

	return &Client{
		&stripeClient,
		stripeSecret.WebhookSignKey,
	}, nil
}

// getStripeSecret reads the keys from the environment, falling back to Secret Manager.
func getStripeSecret(ctx context.Context) (stripeSecret, error) {
	secret := stripeSecret{
		APIKey:         os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSignKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}

	if secret.APIKey != "" && secret.WebhookSignKey != "" {
		return secret, nil
	}

	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		if secret.APIKey == "" {
			return stripeSecret{}, domain.ErrMissingAPIKey
		}

		return stripeSecret{}, domain.ErrMissingWebhookKey
	}

	var stored stripeSecret

	if err := json.Unmarshal(data, &stored); err != nil {
		return stripeSecret{}, err
	}

	if secret.APIKey == "" {
		secret.APIKey = stored.APIKey
	}

	if secret.WebhookSignKey == "" {
		secret.WebhookSignKey = stored.WebhookSignKey
	}

	if secret.APIKey == "" {
		return stripeSecret{}, domain.ErrMissingAPIKey
	}

	return secret, nil
}

func (c *Client) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.Customers.New(params)
}

func (c *Client) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.New(params)
}

func (c *Client) NewPortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	return c.BillingPortalSessions.New(params)
}

func (c *Client) NewRefund(params *stripe.RefundParams) (*stripe.Refund, error) {
	return c.Refunds.New(params)
}

func (c *Client) ListRefunds(params *stripe.RefundListParams) ([]*stripe.Refund, error) {
	refunds := make([]*stripe.Refund, 0)

	iter := c.Refunds.List(params)
	for iter.Next() {
		refunds = append(refunds, iter.Refund())

		if params.Limit != nil && int64(len(refunds)) >= *params.Limit {
			break
		}
	}

	return refunds, iter.Err()
}

func (c *Client) GetCharge(id string) (*stripe.Charge, error) {
	return c.Charges.Get(id, nil)
}

func (c *Client) NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return c.Subscriptions.New(params)
}

func (c *Client) GetSubscription(id string) (*stripe.Subscription, error) {
	return c.Subscriptions.Get(id, nil)
}

func (c *Client) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return c.Subscriptions.Update(id, params)
}

func (c *Client) CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	return c.Subscriptions.Cancel(id, params)
}

func (c *Client) NewProduct(params *stripe.ProductParams) (*stripe.Product, error) {
	return c.Products.New(params)
}

func (c *Client) NewPrice(params *stripe.PriceParams) (*stripe.Price, error) {
	return c.Prices.New(params)
}

// ConstructEvent verifies the Stripe-Signature header against the raw body.
// Events signed for another API version are still accepted.
func (c *Client) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	if c.webhookSignKey == "" {
		return stripe.Event{}, domain.ErrMissingWebhookKey
	}

	return webhook.ConstructEventWithOptions(payload, signature, c.webhookSignKey, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
}
