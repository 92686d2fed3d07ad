package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/tally/domain"
	"github.com/gettupp/backoffice/tally/service"
	"github.com/gettupp/backoffice/tally/service/iface"
)

const signatureHeader = "tally-signature"

type Tally struct {
	loggerProvider logger.Provider
	service        iface.TallyIface
}

func NewTally(log logger.Provider, conn *connection.Connection) *Tally {
	return &Tally{
		log,
		service.NewTallyService(log, conn),
	}
}

// WebhookHandler receives Tally form events.
func (h *Tally) WebhookHandler(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	res, err := h.service.HandleWebhook(ctx, body, ctx.GetHeader(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			return web.NewRequestError(domain.ErrInvalidSignature, http.StatusUnauthorized)
		case errors.Is(err, domain.ErrInvalidPayload):
			return web.NewRequestError(domain.ErrInvalidPayload, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	if res.Ignored {
		return web.RespondRaw(ctx, gin.H{"received": true}, http.StatusOK)
	}

	return web.RespondWithMessage(ctx, res, "Webhook processed successfully", http.StatusOK)
}

// Verify answers the endpoint checks some form providers send before posting.
func (h *Tally) Verify(ctx *gin.Context) error {
	if challenge := ctx.Query("challenge"); challenge != "" {
		return web.RespondRaw(ctx, gin.H{"challenge": challenge}, http.StatusOK)
	}

	return web.RespondRaw(ctx, gin.H{"status": "ok", "message": "Tally webhook endpoint active"}, http.StatusOK)
}
