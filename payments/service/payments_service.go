package service

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/payments/dal"
	"github.com/gettupp/backoffice/payments/dal/iface"
	"github.com/gettupp/backoffice/payments/domain"
)

type PaymentsService struct {
	loggerProvider logger.Provider
	paymentsDal    iface.Payments
}

func NewPaymentsService(log logger.Provider, conn *connection.Connection) *PaymentsService {
	return NewPaymentsServiceWithDal(log, dal.NewPaymentsFirestoreWithClient(conn.Firestore))
}

func NewPaymentsServiceWithDal(log logger.Provider, paymentsDal iface.Payments) *PaymentsService {
	return &PaymentsService{
		loggerProvider: log,
		paymentsDal:    paymentsDal,
	}
}

func (s *PaymentsService) ListPayments(ctx context.Context, req ListPaymentsRequest) (*ListPaymentsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	payments, err := s.paymentsDal.List(ctx, domain.ListFilter{
		ClientID: req.ClientID,
		Status:   domain.PaymentStatus(strings.ToLower(req.Status)),
		Type:     domain.PaymentType(strings.ToLower(req.Type)),
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListPaymentsResponse{
		Payments: payments,
		Totals:   domain.ComputeTotals(payments),
	}, nil
}

func (s *PaymentsService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentsDal.Get(ctx, paymentID)
}

// RecordOnce stores the payment under paymentID. A payment already stored there
// is kept and is not an error.
func (s *PaymentsService) RecordOnce(ctx context.Context, paymentID string, payment *domain.Payment) error {
	if payment.Currency == "" {
		payment.Currency = "usd"
	}

	if err := s.paymentsDal.CreateWithID(ctx, paymentID, payment); err != nil && !errors.Is(err, domain.ErrPaymentExists) {
		return err
	}

	return nil
}

// FindByCharge returns the one-time or subscription payment of a Stripe charge.
func (s *PaymentsService) FindByCharge(ctx context.Context, chargeID, paymentIntentID string) (*domain.Payment, error) {
	return s.paymentsDal.FindByCharge(ctx, chargeID, paymentIntentID)
}

// MarkRefunded flags the payment as fully or partially refunded. refundedAmount
// is the total refunded on the charge so far.
func (s *PaymentsService) MarkRefunded(ctx context.Context, paymentID string, refundedAmount float64, full bool) error {
	return s.paymentsDal.Update(ctx, paymentID, []firestore.Update{
		{Path: "status", Value: domain.RefundStatus(full)},
		{Path: "refundedAmount", Value: refundedAmount},
	})
}
