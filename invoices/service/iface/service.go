//go:generate mockery --output=../mocks --all

package iface

import (
	"context"
	"time"

	"github.com/gettupp/backoffice/invoices/domain"
	"github.com/gettupp/backoffice/invoices/service"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type InvoicesIface interface {
	ListInvoices(ctx context.Context, req service.ListInvoicesRequest) ([]*domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	CreateStub(ctx context.Context, clientID string, tier tiers.Tier, sessionID string) (string, error)
	MarkPaidBySession(ctx context.Context, sessionID string, amount float64, paidAt time.Time) (*domain.Invoice, error)
	CreatePaid(ctx context.Context, invoice *domain.Invoice) (string, error)
}
