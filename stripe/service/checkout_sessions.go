package service

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/gettupp/backoffice/stripe/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

const defaultCurrency = "usd"

// CreateCheckout opens a hosted checkout for an existing client and records an
// invoice stub that the webhook settles once the session completes.
func (s *StripeService) CreateCheckout(ctx context.Context, req CheckoutRequest) (*domain.CheckoutSession, error) {
	l := s.loggerProvider(ctx)

	tier, err := tiers.ParseTier(req.Tier)
	if err != nil {
		return nil, err
	}

	client, err := s.clientsDal.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	customerID, err := s.getOrCreateCustomer(ctx, client)
	if err != nil {
		return nil, err
	}

	params := s.sessionParams(tiers.Product(tier))
	params.Customer = stripe.String(customerID)
	attachMetadata(params, map[string]string{
		domain.MetadataClientID: client.ID,
		domain.MetadataTier:     string(tier),
	})

	session, err := s.gateway.NewCheckoutSession(params)
	if err != nil {
		return nil, err
	}

	if _, err := s.invoicesService.CreateStub(ctx, client.ID, tier, session.ID); err != nil {
		return nil, err
	}

	l.Infof("checkout session %s created for client %s tier %s", session.ID, client.ID, tier)

	return &domain.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// CreatePublicCheckout opens a hosted checkout for a tier or merch item without
// a client. The webhook creates the client when the session completes.
func (s *StripeService) CreatePublicCheckout(ctx context.Context, req PublicCheckoutRequest) (*domain.CheckoutSession, error) {
	if req.Tier == "" {
		return nil, domain.ErrMissingProduct
	}

	product := tiers.Product(strings.ToLower(req.Tier))
	if !product.IsValid() {
		return nil, domain.ErrInvalidProduct
	}

	params := s.sessionParams(product)
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}

	attachMetadata(params, map[string]string{
		domain.MetadataTier:   string(product),
		domain.MetadataSource: domain.SourcePublicCheckout,
	})

	session, err := s.gateway.NewCheckoutSession(params)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *StripeService) sessionParams(product tiers.Product) *stripe.CheckoutSessionParams {
	mode := stripe.CheckoutSessionModePayment
	if product.Recurring() {
		mode = stripe.CheckoutSessionModeSubscription
	}

	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(mode)),
		LineItems:          []*stripe.CheckoutSessionLineItemParams{lineItem(product)},
		SuccessURL:         stripe.String(s.appURL + domain.CheckoutSuccessPath),
		CancelURL:          stripe.String(s.appURL + domain.CheckoutCancelPath),
		// advertising services are tax exempt
		AutomaticTax:    &stripe.CheckoutSessionAutomaticTaxParams{Enabled: stripe.Bool(false)},
		TaxIDCollection: &stripe.CheckoutSessionTaxIDCollectionParams{Enabled: stripe.Bool(false)},
	}
}

// attachMetadata sets the metadata on the session and on the payment intent or
// subscription it creates, so later events can be traced back to the client.
func attachMetadata(params *stripe.CheckoutSessionParams, metadata map[string]string) {
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	if stripe.StringValue(params.Mode) == string(stripe.CheckoutSessionModeSubscription) {
		subscriptionMetadata := map[string]string{domain.MetadataOrigin: domain.OriginCheckout}
		for k, v := range metadata {
			subscriptionMetadata[k] = v
		}

		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{Metadata: subscriptionMetadata}

		return
	}

	params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{Metadata: metadata}
}

// lineItem uses the configured price of the product, or builds one from the fallback table.
func lineItem(product tiers.Product) *stripe.CheckoutSessionLineItemParams {
	if priceID := product.PriceID(); priceID != "" {
		return &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency: stripe.String(defaultCurrency),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(product.Name()),
			Description: stripe.String("GettUpp Entertainment - " + strings.ToUpper(string(product))),
		},
		UnitAmount: stripe.Int64(product.FallbackAmount()),
	}

	if product.Recurring() {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}

	return &stripe.CheckoutSessionLineItemParams{
		PriceData: priceData,
		Quantity:  stripe.Int64(1),
	}
}
