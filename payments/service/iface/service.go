//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/payments/domain"
	"github.com/gettupp/backoffice/payments/service"
)

type PaymentsIface interface {
	ListPayments(ctx context.Context, req service.ListPaymentsRequest) (*service.ListPaymentsResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	RecordOnce(ctx context.Context, paymentID string, payment *domain.Payment) error
	FindByCharge(ctx context.Context, chargeID, paymentIntentID string) (*domain.Payment, error)
	MarkRefunded(ctx context.Context, paymentID string, refundedAmount float64, full bool) error
}
