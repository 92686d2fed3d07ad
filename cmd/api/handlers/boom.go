package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
)

// Boom fails on purpose so error reporting can be checked end to end.
func Boom(ctx *gin.Context) error {
	boomType := ctx.Query("type")
	errorMessage := strings.TrimSpace(fmt.Sprintf("boom (%s) %s", boomType, ctx.Query("message")))

	switch boomType {
	case "message":
		if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("route", "boom")
				hub.CaptureMessage(errorMessage)
			})
		}

		return web.Respond(ctx, gin.H{"captured": errorMessage}, http.StatusOK)
	case "return-value":
		return web.NewRequestError(errors.New(errorMessage), http.StatusInternalServerError)
	default:
		panic(errors.New(errorMessage))
	}
}
