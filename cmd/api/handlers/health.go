package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/web"
)

func Health(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{
		"status":  "ok",
		"service": common.Service,
		"version": common.Version,
	}, http.StatusOK)
}
