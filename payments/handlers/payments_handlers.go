package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/payments/domain"
	"github.com/gettupp/backoffice/payments/service"
	"github.com/gettupp/backoffice/payments/service/iface"
	"github.com/gettupp/backoffice/validation"
)

type Payments struct {
	loggerProvider logger.Provider
	service        iface.PaymentsIface
}

func NewPayments(log logger.Provider, conn *connection.Connection) *Payments {
	s := service.NewPaymentsService(log, conn)

	return &Payments{
		log,
		s,
	}
}

func (h *Payments) ListPayments(ctx *gin.Context) error {
	var req service.ListPaymentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	res, err := h.service.ListPayments(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *Payments) GetPayment(ctx *gin.Context) error {
	payment, err := h.service.GetPayment(ctx, ctx.Param("id"))
	if err != nil {
		return web.TranslateError(err, web.ErrorMapping{Err: domain.ErrPaymentNotFound, Status: http.StatusNotFound})
	}

	return web.Respond(ctx, payment, http.StatusOK)
}
