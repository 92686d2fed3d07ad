package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	invoicesMocks "github.com/gettupp/backoffice/invoices/dal/mocks"
	"github.com/gettupp/backoffice/invoices/domain"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

func TestInvoicesService_CreateStub(t *testing.T) {
	ctx := context.Background()
	invoicesDal := invoicesMocks.NewInvoices(t)
	s := NewInvoicesServiceWithDal(logger.FromContext, invoicesDal)

	invoicesDal.On("Create", ctx, &domain.Invoice{
		ClientID:        "client-1",
		StripeSessionID: "cs_1",
		Tier:            tiers.TierT2,
		Currency:        "usd",
		Status:          domain.StatusSent,
		Description:     "GettUpp T2 Package",
	}).Return("inv-1", nil)

	id, err := s.CreateStub(ctx, "client-1", tiers.TierT2, "cs_1")
	assert.NoError(t, err)
	assert.Equal(t, "inv-1", id)
}

func TestInvoicesService_MarkPaidBySession(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	testError := errors.New("test error")

	tests := []struct {
		name        string
		on          func(*invoicesMocks.Invoices)
		expectedErr error
	}{
		{
			name: "sent invoice is paid",
			on: func(d *invoicesMocks.Invoices) {
				d.On("FindByStripeSessionID", ctx, "cs_1").Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusSent}, nil)
				d.On("Update", ctx, "inv-1", []firestore.Update{
					{Path: "status", Value: domain.StatusPaid},
					{Path: "amount", Value: 695.0},
					{Path: "paidAt", Value: paidAt},
				}).Return(nil)
			},
		},
		{
			name: "replayed payment stays paid",
			on: func(d *invoicesMocks.Invoices) {
				d.On("FindByStripeSessionID", ctx, "cs_1").Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusPaid}, nil)
				d.On("Update", ctx, "inv-1", mock.Anything).Return(nil)
			},
		},
		{
			name: "cancelled invoice",
			on: func(d *invoicesMocks.Invoices) {
				d.On("FindByStripeSessionID", ctx, "cs_1").Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusCancelled}, nil)
			},
			expectedErr: domain.ErrNotPayable,
		},
		{
			name: "no invoice for the session",
			on: func(d *invoicesMocks.Invoices) {
				d.On("FindByStripeSessionID", ctx, "cs_1").Return(nil, domain.ErrInvoiceNotFound)
			},
			expectedErr: domain.ErrInvoiceNotFound,
		},
		{
			name: "update fails",
			on: func(d *invoicesMocks.Invoices) {
				d.On("FindByStripeSessionID", ctx, "cs_1").Return(&domain.Invoice{ID: "inv-1", Status: domain.StatusDraft}, nil)
				d.On("Update", ctx, "inv-1", mock.Anything).Return(testError)
			},
			expectedErr: testError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoicesDal := invoicesMocks.NewInvoices(t)
			s := NewInvoicesServiceWithDal(logger.FromContext, invoicesDal)
			tt.on(invoicesDal)

			got, err := s.MarkPaidBySession(ctx, "cs_1", 695, paidAt)
			if tt.expectedErr != nil {
				assert.That(t, errors.Is(err, tt.expectedErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, domain.StatusPaid, got.Status)
			assert.Equal(t, 695.0, got.Amount)
		})
	}
}

func TestInvoicesService_CreatePaid(t *testing.T) {
	ctx := context.Background()
	invoicesDal := invoicesMocks.NewInvoices(t)
	s := NewInvoicesServiceWithDal(logger.FromContext, invoicesDal)

	invoicesDal.On("CreateWithID", ctx, "in_1", mock.MatchedBy(func(i *domain.Invoice) bool {
		return i.Status == domain.StatusPaid && i.Currency == "usd" && i.StripeInvoiceID == "in_1"
	})).Return(nil).Once()

	id, err := s.CreatePaid(ctx, &domain.Invoice{ClientID: "client-1", StripeInvoiceID: "in_1", Amount: 445})
	assert.NoError(t, err)
	assert.Equal(t, "in_1", id)

	invoicesDal.On("CreateWithID", ctx, "in_1", mock.Anything).Return(domain.ErrInvoiceExists).Once()

	id, err = s.CreatePaid(ctx, &domain.Invoice{ClientID: "client-1", StripeInvoiceID: "in_1", Amount: 445})
	assert.NoError(t, err)
	assert.Equal(t, "in_1", id)

	invoicesDal.On("Create", ctx, mock.MatchedBy(func(i *domain.Invoice) bool {
		return i.StripeInvoiceID == ""
	})).Return("inv-2", nil)

	id, err = s.CreatePaid(ctx, &domain.Invoice{ClientID: "client-1", Amount: 445})
	assert.NoError(t, err)
	assert.Equal(t, "inv-2", id)
}
