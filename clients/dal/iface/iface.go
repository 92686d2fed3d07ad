//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/clients/domain"
	payments "github.com/gettupp/backoffice/payments/domain"
)

type Clients interface {
	GetRef(ctx context.Context, clientID string) *firestore.DocumentRef
	Get(ctx context.Context, clientID string) (*domain.Client, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Client, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (string, error)
	CreateFromLead(ctx context.Context, client *domain.Client, leadID string) (string, error)
	Update(ctx context.Context, clientID string, updates []firestore.Update) (*domain.Client, error)
	Settle(ctx context.Context, clientID, paymentID string, payment *payments.Payment, effect domain.PaymentEffect) (bool, error)
}
