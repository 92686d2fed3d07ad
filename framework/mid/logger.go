package mid

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/internal"
	"github.com/gettupp/backoffice/logger"
)

const (
	healthCheckExcludePath = "/health"
)

// Logger writes some information about the request to the logs in the
// format: TraceID : (200) GET /foo -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if ctx.Request.URL.Path == healthCheckExcludePath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)
			log.SetLabel("route", v.Route)

			for _, key := range []string{"id", "clientId", "shootId", "leadId"} {
				if value := ctx.Param(key); value != "" {
					log.SetLabel(key, value)
				}
			}

			log.Printf("%s: started : %s %s -> %s",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
			)

			err := before(ctx)

			if err != nil {
				log.Printf("ERROR: %s", err)
			} else if v.StatusCode >= http.StatusBadRequest || v.StatusCode == 0 {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					log.Errorf("Request fails %s", lastErr)
				}
			}

			log.Printf("%s: completed : %s %s -> %s (%d) (%s)",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
				v.StatusCode, time.Since(v.Now),
			)

			return err
		}

		return h
	}

	return f
}
