//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/invoices/domain"
)

type Invoices interface {
	Get(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Invoice, error)
	FindByStripeSessionID(ctx context.Context, sessionID string) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) (string, error)
	CreateWithID(ctx context.Context, invoiceID string, invoice *domain.Invoice) error
	Update(ctx context.Context, invoiceID string, updates []firestore.Update) error
}
