package handlers

import (
	"context"
	"errors"
	"net/http"

	clients "github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/stripe/domain"
	"github.com/gettupp/backoffice/stripe/service"
	"github.com/gettupp/backoffice/stripe/service/iface"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

type Stripe struct {
	loggerProvider logger.Provider
	service        iface.StripeService
	webhookService iface.WebhookService
}

// NewStripe creates new stripe package handlers
func NewStripe(loggerProvider logger.Provider, conn *connection.Connection) *Stripe {
	stripeClient, err := service.NewStripeClient(context.Background())
	if err != nil {
		panic(err)
	}

	return &Stripe{
		loggerProvider,
		service.NewStripeService(loggerProvider, conn, stripeClient),
		service.NewStripeWebhookService(loggerProvider, conn, stripeClient),
	}
}

func translateError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.TranslateError(err,
		web.ErrorMapping{Err: clients.ErrClientNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: clients.ErrNoStripeCustomer, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: tiers.ErrInvalidTier, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrMissingProduct, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidProduct, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidRefund, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidAction, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrMissingPriceID, Status: http.StatusBadRequest},
	)
}
