package service

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v74"

	"github.com/gettupp/backoffice/stripe/domain"
	subscriptions "github.com/gettupp/backoffice/subscriptions/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

func (s *StripeService) ListSubscriptions(ctx context.Context, req ListSubscriptionsRequest) ([]*subscriptions.Subscription, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSubscriptionLimit
	}

	return s.subscriptionsDal.List(ctx, subscriptions.ListFilter{
		ClientID: req.ClientID,
		Status:   req.Status,
		Limit:    limit,
	})
}

// CreateSubscription opens an incomplete subscription whose first invoice the
// browser confirms with the returned client secret.
func (s *StripeService) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*domain.NewSubscription, error) {
	client, err := s.clientsDal.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	customerID, err := s.getOrCreateCustomer(ctx, client)
	if err != nil {
		return nil, err
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(req.PriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")
	params.AddMetadata(domain.MetadataClientID, client.ID)

	if req.Tier != "" {
		params.AddMetadata(domain.MetadataTier, req.Tier)
	}

	sub, err := s.gateway.NewSubscription(params)
	if err != nil {
		return nil, err
	}

	res := &domain.NewSubscription{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
	}

	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		res.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return res, nil
}

// UpdateSubscription applies an admin action. Stored records follow through the
// customer.subscription.* webhooks.
func (s *StripeService) UpdateSubscription(ctx context.Context, req UpdateSubscriptionRequest) (*domain.SubscriptionUpdate, error) {
	l := s.loggerProvider(ctx)

	var (
		sub *stripe.Subscription
		err error
	)

	switch domain.SubscriptionAction(req.Action) {
	case domain.ActionCancel:
		sub, err = s.gateway.UpdateSubscription(req.SubscriptionID, &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(true),
		})
	case domain.ActionCancelImmediately:
		sub, err = s.gateway.CancelSubscription(req.SubscriptionID, nil)
	case domain.ActionResume:
		sub, err = s.gateway.UpdateSubscription(req.SubscriptionID, &stripe.SubscriptionParams{
			CancelAtPeriodEnd: stripe.Bool(false),
		})
	case domain.ActionChangePlan:
		if req.PriceID == "" {
			return nil, domain.ErrMissingPriceID
		}

		sub, err = s.changePlan(req.SubscriptionID, req.PriceID)
	default:
		return nil, domain.ErrInvalidAction
	}

	if err != nil {
		return nil, err
	}

	l.Infof("subscription %s: %s applied, status %s", sub.ID, req.Action, sub.Status)

	return &domain.SubscriptionUpdate{
		SubscriptionID:    sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}, nil
}

func (s *StripeService) changePlan(subscriptionID, priceID string) (*stripe.Subscription, error) {
	current, err := s.gateway.GetSubscription(subscriptionID)
	if err != nil {
		return nil, err
	}

	item := &stripe.SubscriptionItemsParams{Price: stripe.String(priceID)}
	if current.Items != nil && len(current.Items.Data) > 0 {
		item.ID = stripe.String(current.Items.Data[0].ID)
	}

	return s.gateway.UpdateSubscription(subscriptionID, &stripe.SubscriptionParams{
		Items:             []*stripe.SubscriptionItemsParams{item},
		ProrationBehavior: stripe.String("create_prorations"),
	})
}

// toSubscription maps a Stripe subscription to the stored record.
func toSubscription(sub *stripe.Subscription, clientID string) *subscriptions.Subscription {
	res := &subscriptions.Subscription{
		ID:                 sub.ID,
		ClientID:           clientID,
		Status:             string(sub.Status),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		CurrentPeriodStart: unixTime(sub.CurrentPeriodStart),
		CurrentPeriodEnd:   unixTime(sub.CurrentPeriodEnd),
		CanceledAt:         unixTime(sub.CanceledAt),
	}

	if sub.Customer != nil {
		res.StripeCustomerID = sub.Customer.ID
	}

	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		res.PriceID = sub.Items.Data[0].Price.ID
	}

	res.Tier = tierForPrice(res.PriceID, sub.Metadata[domain.MetadataTier])

	return res
}

// tierForPrice finds the tier configured with the price, then trusts the metadata.
func tierForPrice(priceID, metadataTier string) tiers.Tier {
	if priceID != "" {
		for _, t := range tiers.Tiers {
			if t.PriceID() == priceID {
				return t
			}
		}
	}

	if t := tiers.Tier(metadataTier); t.IsValid() {
		return t
	}

	return ""
}

func unixTime(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}

	t := time.Unix(sec, 0).UTC()

	return &t
}
