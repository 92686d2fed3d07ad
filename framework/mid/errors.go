package mid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/internal"
	"github.com/gettupp/backoffice/logger"
)

// Errors handles errors coming out of the call chain and answers them with the
// error envelope. Client errors are logged as warnings, everything else as errors
// with the full detail that the response hides.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			if err := before(ctx); err != nil {
				var webErr *web.Error
				if errors.As(err, &webErr) && webErr.Status < http.StatusInternalServerError {
					log.Warningf("%s: %s %s: %v", v.TraceID, ctx.Request.Method, v.Route, err)
				} else {
					log.Errorf("%s: %s %s: ERROR: %v", v.TraceID, ctx.Request.Method, v.Route, err)
				}

				if err := web.RespondError(ctx, err); err != nil {
					return err
				}

				// If we receive the shutdown err we need to return it
				// back to the base handler to shutdown the service.
				if ok := web.IsShutdown(err); ok {
					return err
				}
			}

			return nil
		}

		return h
	}

	return f
}
