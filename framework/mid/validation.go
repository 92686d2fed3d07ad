package mid

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
)

// ValidatePathParamNotEmpty rejects requests whose path parameter is blank.
func ValidatePathParamNotEmpty(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if paramValue := ctx.Param(paramName); paramValue == "" {
				return web.NewRequestError(fmt.Errorf("%s is required", paramName), http.StatusBadRequest)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
