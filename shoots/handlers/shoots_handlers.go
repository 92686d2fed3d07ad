package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clients "github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/shoots/domain"
	"github.com/gettupp/backoffice/shoots/service"
	"github.com/gettupp/backoffice/shoots/service/iface"
	"github.com/gettupp/backoffice/validation"
)

type Shoots struct {
	loggerProvider logger.Provider
	service        iface.ShootsIface
}

func NewShoots(log logger.Provider, conn *connection.Connection) *Shoots {
	s := service.NewShootsService(log, conn)

	return &Shoots{
		log,
		s,
	}
}

func (h *Shoots) ListShoots(ctx *gin.Context) error {
	var req service.ListShootsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	shoots, err := h.service.ListShoots(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, shoots, http.StatusOK)
}

func (h *Shoots) GetShoot(ctx *gin.Context) error {
	shoot, err := h.service.GetShoot(ctx, ctx.Param("id"))
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, shoot, http.StatusOK)
}

func (h *Shoots) CreateShoot(ctx *gin.Context) error {
	var body service.CreateShootRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	id, err := h.service.CreateShoot(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, gin.H{"id": id}, "Shoot scheduled successfully", http.StatusCreated)
}

func (h *Shoots) UpdateShoot(ctx *gin.Context) error {
	var body service.UpdateShootRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	shoot, err := h.service.UpdateShoot(ctx, ctx.Param("id"), body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, shoot, "Shoot updated successfully", http.StatusOK)
}

func (h *Shoots) CancelShoot(ctx *gin.Context) error {
	if err := h.service.CancelShoot(ctx, ctx.Param("id")); err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, nil, "Shoot cancelled successfully", http.StatusOK)
}

func translateError(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.TranslateError(err,
		web.ErrorMapping{Err: domain.ErrShootNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: clients.ErrClientNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: domain.ErrMissingShootFields, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidType, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidStatus, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidScheduleDate, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: validation.ErrPastDate, Status: http.StatusBadRequest},
	)
}
