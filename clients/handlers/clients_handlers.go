package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/clients/service"
	"github.com/gettupp/backoffice/clients/service/iface"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	leads "github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

type Clients struct {
	loggerProvider logger.Provider
	service        iface.ClientsIface
}

func NewClients(log logger.Provider, conn *connection.Connection) *Clients {
	s := service.NewClientsService(log, conn)

	return &Clients{
		log,
		s,
	}
}

func (h *Clients) ListClients(ctx *gin.Context) error {
	var req service.ListClientsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	clients, err := h.service.ListClients(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, clients, http.StatusOK)
}

func (h *Clients) GetClient(ctx *gin.Context) error {
	client, err := h.service.GetClient(ctx, ctx.Param("id"))
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, client, http.StatusOK)
}

func (h *Clients) CreateClient(ctx *gin.Context) error {
	var body service.CreateClientRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	id, err := h.service.CreateClient(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, gin.H{"id": id}, "Client created successfully", http.StatusCreated)
}

func (h *Clients) UpdateClient(ctx *gin.Context) error {
	var body service.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	client, err := h.service.UpdateClient(ctx, ctx.Param("id"), body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, client, "Client updated successfully", http.StatusOK)
}

func (h *Clients) DeleteClient(ctx *gin.Context) error {
	if err := h.service.DeleteClient(ctx, ctx.Param("id")); err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, nil, "Client deleted (marked as cancelled)", http.StatusOK)
}

func translateError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.TranslateError(err,
		web.ErrorMapping{Err: domain.ErrClientNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: leads.ErrLeadNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: leads.ErrLeadAlreadyConverted, Status: http.StatusConflict},
		web.ErrorMapping{Err: domain.ErrMissingClientFields, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidStatus, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: tiers.ErrInvalidTier, Status: http.StatusBadRequest},
	)
}
