package service

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/stripe/stripe-go/v74"

	clients "github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/stripe/domain"
)

// getOrCreateCustomer returns the Stripe customer of the client, creating it on
// first use and saving its id back on the client.
func (s *StripeService) getOrCreateCustomer(ctx context.Context, client *clients.Client) (string, error) {
	if client.StripeCustomerID != "" {
		return client.StripeCustomerID, nil
	}

	l := s.loggerProvider(ctx)

	params := &stripe.CustomerParams{
		Name:  stripe.String(client.Name),
		Email: stripe.String(client.Email),
	}
	params.AddMetadata(domain.MetadataClientID, client.ID)
	params.AddMetadata(domain.MetadataSource, domain.SourceBackOffice)
	params.SetIdempotencyKey("customer-" + client.ID)

	customer, err := s.gateway.NewCustomer(params)
	if err != nil {
		return "", err
	}

	l.Infof("created stripe customer %s for client %s", customer.ID, client.ID)

	if _, err := s.clientsDal.Update(ctx, client.ID, []firestore.Update{
		{Path: "stripeCustomerId", Value: customer.ID},
	}); err != nil {
		return "", err
	}

	client.StripeCustomerID = customer.ID

	return customer.ID, nil
}
