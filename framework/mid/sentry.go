package mid

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/web"
)

func captureError(ctx *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelError)
			scope.SetTag("route", ctx.FullPath())

			if uid := ctx.GetString(common.CtxKeys.UID); uid != "" {
				scope.SetUser(sentry.User{ID: uid, Email: ctx.GetString(common.CtxKeys.Email)})
			}

			hub.CaptureException(err)
		})
	}
}

// Sentry reports upstream failures: handler errors answered with a 5xx, and
// requests aborted with a gin error and an error status.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if err := before(ctx); err != nil {
				var webErr *web.Error
				if !errors.As(err, &webErr) || webErr.Status >= http.StatusInternalServerError {
					captureError(ctx, err)
				}

				return err
			}

			if ctx.Writer.Status() >= http.StatusBadRequest {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					captureError(ctx, lastErr.Err)
				}
			}

			return nil
		}

		return h
	}

	return f
}
