package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/leads/service"
	"github.com/gettupp/backoffice/leads/service/iface"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

const bookingMessage = "Booking request received! We will contact you within 24 hours."

type Leads struct {
	loggerProvider logger.Provider
	service        iface.LeadsIface
}

func NewLeads(log logger.Provider, conn *connection.Connection) *Leads {
	s := service.NewLeadsService(log, conn)

	return &Leads{
		log,
		s,
	}
}

func (h *Leads) ListLeads(ctx *gin.Context) error {
	var req service.ListLeadsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	leads, err := h.service.ListLeads(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, leads, http.StatusOK)
}

func (h *Leads) GetLead(ctx *gin.Context) error {
	lead, err := h.service.GetLead(ctx, ctx.Param("id"))
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, lead, http.StatusOK)
}

func (h *Leads) CreateLead(ctx *gin.Context) error {
	var body service.CreateLeadRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	id, err := h.service.CreateLead(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, gin.H{"id": id}, "Lead created successfully", http.StatusCreated)
}

func (h *Leads) UpdateLead(ctx *gin.Context) error {
	var body service.UpdateLeadRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	lead, err := h.service.UpdateLead(ctx, ctx.Param("id"), body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, lead, "Lead updated successfully", http.StatusOK)
}

// Book handles the public schedule form.
func (h *Leads) Book(ctx *gin.Context) error {
	var body service.BookingRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	id, err := h.service.Book(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, gin.H{"id": id}, bookingMessage, http.StatusCreated)
}

func translateError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.TranslateError(err,
		web.ErrorMapping{Err: domain.ErrLeadNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: domain.ErrMissingLeadFields, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrMissingBookingField, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidStatus, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: tiers.ErrInvalidTier, Status: http.StatusBadRequest},
	)
}
