package service

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v74"

	"github.com/gettupp/backoffice/stripe/domain"
	"github.com/gettupp/backoffice/stripe/utils"
)

// CreateRefund refunds a payment intent, in full unless an amount is given.
func (s *StripeService) CreateRefund(ctx context.Context, req RefundRequest) (*domain.Refund, error) {
	l := s.loggerProvider(ctx)

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentIntentID),
	}

	if req.Amount != nil {
		params.Amount = stripe.Int64(utils.ToCents(*req.Amount))
	}

	if req.Reason != "" {
		if !domain.IsValidRefundReason(req.Reason) {
			return nil, domain.ErrInvalidRefund
		}

		params.Reason = stripe.String(req.Reason)
	}

	refund, err := s.gateway.NewRefund(params)
	if err != nil {
		return nil, err
	}

	l.Infof("refund %s of %d cents created for %s", refund.ID, refund.Amount, req.PaymentIntentID)

	return toRefund(refund), nil
}

func (s *StripeService) ListRefunds(ctx context.Context, req ListRefundsRequest) ([]*domain.Refund, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRefundLimit
	}

	params := &stripe.RefundListParams{}
	params.Limit = stripe.Int64(limit)

	if req.PaymentIntentID != "" {
		params.PaymentIntent = stripe.String(req.PaymentIntentID)
	}

	refunds, err := s.gateway.ListRefunds(params)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Refund, 0, len(refunds))
	for _, r := range refunds {
		res = append(res, toRefund(r))
	}

	return res, nil
}

func toRefund(r *stripe.Refund) *domain.Refund {
	refund := &domain.Refund{
		ID:       r.ID,
		Amount:   utils.FromCents(r.Amount),
		Currency: string(r.Currency),
		Status:   string(r.Status),
		Reason:   string(r.Reason),
		Created:  time.Unix(r.Created, 0).UTC(),
	}

	if r.PaymentIntent != nil {
		refund.PaymentIntentID = r.PaymentIntent.ID
	}

	return refund
}
