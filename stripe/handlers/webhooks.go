package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/stripe/domain"
)

// WebhookHandler handles events from stripe
func (h *Stripe) WebhookHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")
	if signature == "" {
		return web.NewRequestError(domain.ErrMissingSignature, http.StatusBadRequest)
	}

	if err := h.webhookService.HandleEvent(ctx, body, signature); err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			l.Warningf("stripe webhook rejected: %s", err)
			return web.NewRequestError(domain.ErrInvalidSignature, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.RespondRaw(ctx, gin.H{"received": true}, http.StatusOK)
}
