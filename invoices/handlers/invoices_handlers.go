package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/invoices/domain"
	"github.com/gettupp/backoffice/invoices/service"
	"github.com/gettupp/backoffice/invoices/service/iface"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/validation"
)

type Invoices struct {
	loggerProvider logger.Provider
	service        iface.InvoicesIface
}

func NewInvoices(log logger.Provider, conn *connection.Connection) *Invoices {
	s := service.NewInvoicesService(log, conn)

	return &Invoices{
		log,
		s,
	}
}

func (h *Invoices) ListInvoices(ctx *gin.Context) error {
	var req service.ListInvoicesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	invoices, err := h.service.ListInvoices(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoices, http.StatusOK)
}

func (h *Invoices) GetInvoice(ctx *gin.Context) error {
	invoice, err := h.service.GetInvoice(ctx, ctx.Param("id"))
	if err != nil {
		return web.TranslateError(err, web.ErrorMapping{Err: domain.ErrInvoiceNotFound, Status: http.StatusNotFound})
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}
