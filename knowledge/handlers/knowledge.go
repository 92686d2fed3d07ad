package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/knowledge/domain"
	"github.com/gettupp/backoffice/knowledge/service"
	"github.com/gettupp/backoffice/knowledge/service/iface"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/validation"
)

type Knowledge struct {
	loggerProvider logger.Provider
	service        iface.KnowledgeIface
}

func NewKnowledge(log logger.Provider, conn *connection.Connection) *Knowledge {
	s := service.NewKnowledgeService(log, conn)

	return &Knowledge{
		log,
		s,
	}
}

func (h *Knowledge) ListNodes(ctx *gin.Context) error {
	var req service.ListNodesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	nodes, err := h.service.ListNodes(ctx, req)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nodes, http.StatusOK)
}

func (h *Knowledge) CreateNode(ctx *gin.Context) error {
	var body service.CreateNodeRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	node, err := h.service.CreateNode(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, node, "Knowledge node created successfully", http.StatusCreated)
}

func (h *Knowledge) UpdateNode(ctx *gin.Context) error {
	var body service.UpdateNodeRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	node, err := h.service.UpdateNode(ctx, ctx.Param("id"), body)
	if err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, node, "Knowledge node updated successfully", http.StatusOK)
}

func (h *Knowledge) DeleteNode(ctx *gin.Context) error {
	if err := h.service.DeleteNode(ctx, ctx.Param("id")); err != nil {
		return translateError(err)
	}

	return web.RespondWithMessage(ctx, nil, "Knowledge node deleted successfully", http.StatusOK)
}

// Ask is the public assistant endpoint.
func (h *Knowledge) Ask(ctx *gin.Context) error {
	var body service.AskRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(validation.BindingError(err), http.StatusBadRequest)
	}

	res, err := h.service.Ask(ctx, body)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func translateError(err error) error {
	return web.TranslateError(err,
		web.ErrorMapping{Err: domain.ErrNodeNotFound, Status: http.StatusNotFound},
		web.ErrorMapping{Err: domain.ErrMissingNodeFields, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidDomain, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidType, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrInvalidStatus, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrEmptyQuery, Status: http.StatusBadRequest},
		web.ErrorMapping{Err: domain.ErrUnknownAgent, Status: http.StatusBadRequest},
	)
}
