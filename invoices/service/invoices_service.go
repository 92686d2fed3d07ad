package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/invoices/dal"
	"github.com/gettupp/backoffice/invoices/dal/iface"
	"github.com/gettupp/backoffice/invoices/domain"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type InvoicesService struct {
	loggerProvider logger.Provider
	invoicesDal    iface.Invoices
}

func NewInvoicesService(log logger.Provider, conn *connection.Connection) *InvoicesService {
	return NewInvoicesServiceWithDal(log, dal.NewInvoicesFirestoreWithClient(conn.Firestore))
}

func NewInvoicesServiceWithDal(log logger.Provider, invoicesDal iface.Invoices) *InvoicesService {
	return &InvoicesService{
		loggerProvider: log,
		invoicesDal:    invoicesDal,
	}
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req ListInvoicesRequest) ([]*domain.Invoice, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.invoicesDal.List(ctx, domain.ListFilter{
		Status:   domain.InvoiceStatus(strings.ToLower(req.Status)),
		ClientID: req.ClientID,
		Limit:    limit,
	})
}

func (s *InvoicesService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoicesDal.Get(ctx, invoiceID)
}

// CreateStub records the invoice opened by an admin checkout. The amount is
// filled in when the session completes.
func (s *InvoicesService) CreateStub(ctx context.Context, clientID string, tier tiers.Tier, sessionID string) (string, error) {
	return s.invoicesDal.Create(ctx, &domain.Invoice{
		ClientID:        clientID,
		StripeSessionID: sessionID,
		Tier:            tier,
		Amount:          0,
		Currency:        domain.DefaultCurrency,
		Status:          domain.StatusSent,
		Description:     domain.PackageDescription(tier),
	})
}

// MarkPaidBySession pays the invoice opened for a checkout session.
func (s *InvoicesService) MarkPaidBySession(ctx context.Context, sessionID string, amount float64, paidAt time.Time) (*domain.Invoice, error) {
	invoice, err := s.invoicesDal.FindByStripeSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Pay(invoice.Status)
	if err != nil {
		return nil, err
	}

	if err := s.invoicesDal.Update(ctx, invoice.ID, []firestore.Update{
		{Path: "status", Value: next},
		{Path: "amount", Value: amount},
		{Path: "paidAt", Value: paidAt},
	}); err != nil {
		return nil, err
	}

	invoice.Status = next
	invoice.Amount = amount
	invoice.PaidAt = &paidAt

	return invoice, nil
}

// CreatePaid records an invoice Stripe already collected, such as a subscription renewal.
// Invoices carrying a Stripe invoice id are stored under that id, once.
func (s *InvoicesService) CreatePaid(ctx context.Context, invoice *domain.Invoice) (string, error) {
	invoice.Status = domain.StatusPaid

	if invoice.Currency == "" {
		invoice.Currency = domain.DefaultCurrency
	}

	if invoice.StripeInvoiceID == "" {
		return s.invoicesDal.Create(ctx, invoice)
	}

	if err := s.invoicesDal.CreateWithID(ctx, invoice.StripeInvoiceID, invoice); err != nil && !errors.Is(err, domain.ErrInvoiceExists) {
		return "", err
	}

	return invoice.StripeInvoiceID, nil
}
