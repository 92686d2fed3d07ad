package mid

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/internal"
)

const (
	SessionCookie = "__session"
	loginPath     = "/login"
)

// SessionRequired gates page routes behind the session cookie set by the login page.
// Requests without it are redirected to the login page, remembering where they were headed.
func SessionRequired() web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if cookie, err := ctx.Cookie(SessionCookie); err != nil || cookie == "" {
				target := loginPath + "?redirect=" + url.QueryEscape(ctx.Request.URL.Path)

				internal.SetStatusCode(ctx, http.StatusTemporaryRedirect)
				ctx.Redirect(http.StatusTemporaryRedirect, target)

				return nil
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
