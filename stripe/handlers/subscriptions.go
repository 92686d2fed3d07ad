package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/stripe/service"
	"github.com/gettupp/backoffice/validation"
)

func (h *Stripe) ListSubscriptions(ctx *gin.Context) error {
	var req service.ListSubscriptionsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	subscriptions, err := h.service.ListSubscriptions(ctx, req)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, subscriptions, http.StatusOK)
}

func (h *Stripe) CreateSubscription(ctx *gin.Context) error {
	var body service.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	subscription, err := h.service.CreateSubscription(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}

func (h *Stripe) UpdateSubscription(ctx *gin.Context) error {
	var body service.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	subscription, err := h.service.UpdateSubscription(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}
