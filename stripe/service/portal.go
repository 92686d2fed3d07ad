package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	clients "github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/stripe/domain"
)

// CreatePortalSession opens the Stripe billing portal for a client that already has a customer.
func (s *StripeService) CreatePortalSession(ctx context.Context, req PortalRequest) (*domain.PortalSession, error) {
	client, err := s.clientsDal.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if client.StripeCustomerID == "" {
		return nil, clients.ErrNoStripeCustomer
	}

	session, err := s.gateway.NewPortalSession(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(client.StripeCustomerID),
		ReturnURL: stripe.String(s.appURL + "/admin/clients/" + client.ID),
	})
	if err != nil {
		return nil, err
	}

	return &domain.PortalSession{URL: session.URL}, nil
}
