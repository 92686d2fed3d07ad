//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/stripe/domain"
	"github.com/gettupp/backoffice/stripe/service"
	subscriptions "github.com/gettupp/backoffice/subscriptions/domain"
)

type StripeService interface {
	CreateCheckout(ctx context.Context, req service.CheckoutRequest) (*domain.CheckoutSession, error)
	CreatePublicCheckout(ctx context.Context, req service.PublicCheckoutRequest) (*domain.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, req service.PortalRequest) (*domain.PortalSession, error)
	CreateRefund(ctx context.Context, req service.RefundRequest) (*domain.Refund, error)
	ListRefunds(ctx context.Context, req service.ListRefundsRequest) ([]*domain.Refund, error)
	ListSubscriptions(ctx context.Context, req service.ListSubscriptionsRequest) ([]*subscriptions.Subscription, error)
	CreateSubscription(ctx context.Context, req service.CreateSubscriptionRequest) (*domain.NewSubscription, error)
	UpdateSubscription(ctx context.Context, req service.UpdateSubscriptionRequest) (*domain.SubscriptionUpdate, error)
	SetupProducts(ctx context.Context) ([]*domain.SetupPrice, error)
}

type WebhookService interface {
	HandleEvent(ctx context.Context, body []byte, signature string) error
}
