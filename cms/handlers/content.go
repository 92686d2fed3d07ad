package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/cms/service"
	"github.com/gettupp/backoffice/cms/service/iface"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
)

type Content struct {
	loggerProvider logger.Provider
	service        iface.ContentIface
}

func NewContent(log logger.Provider, conn *connection.Connection) *Content {
	s := service.NewContentService(log, conn)

	return &Content{
		log,
		s,
	}
}

// GetContent serves the public site content.
func (h *Content) GetContent(ctx *gin.Context) error {
	content, err := h.service.Load(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, content, http.StatusOK)
}

func (h *Content) SeedContent(ctx *gin.Context) error {
	content, err := h.service.Seed(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.RespondWithMessage(ctx, content, "Site content seeded", http.StatusOK)
}
