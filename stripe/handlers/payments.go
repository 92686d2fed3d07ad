package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/stripe/service"
	"github.com/gettupp/backoffice/validation"
)

func (h *Stripe) CreateCheckout(ctx *gin.Context) error {
	var body service.CheckoutRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	session, err := h.service.CreateCheckout(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

func (h *Stripe) CreatePublicCheckout(ctx *gin.Context) error {
	var body service.PublicCheckoutRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	session, err := h.service.CreatePublicCheckout(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

func (h *Stripe) CreatePortalSession(ctx *gin.Context) error {
	var body service.PortalRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	session, err := h.service.CreatePortalSession(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

func (h *Stripe) CreateRefund(ctx *gin.Context) error {
	var body service.RefundRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	refund, err := h.service.CreateRefund(ctx, body)
	if err != nil {
		return translateError(err)
	}

	message := fmt.Sprintf("Refund of $%.2f processed successfully", refund.Amount)

	return web.RespondWithMessage(ctx, refund, message, http.StatusOK)
}

func (h *Stripe) ListRefunds(ctx *gin.Context) error {
	var req service.ListRefundsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	refunds, err := h.service.ListRefunds(ctx, req)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, refunds, http.StatusOK)
}
