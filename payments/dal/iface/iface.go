//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/payments/domain"
)

type Payments interface {
	Get(ctx context.Context, paymentID string) (*domain.Payment, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Payment, error)
	FindByCharge(ctx context.Context, chargeID, paymentIntentID string) (*domain.Payment, error)
	CreateWithID(ctx context.Context, paymentID string, payment *domain.Payment) error
	Update(ctx context.Context, paymentID string, updates []firestore.Update) error
}
