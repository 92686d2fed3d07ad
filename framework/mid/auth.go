package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/common"
	fb "github.com/gettupp/backoffice/firebase"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
)

// AuthRequired middleware that auth requests coming from the admin app.
// It runs before the handler so a rejected request never reaches storage.
func AuthRequired(verifier fb.TokenVerifier) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, err := fb.VerifyIDToken(ctx, verifier)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			email := fb.Email(token)

			ctx.Set(common.CtxKeys.Claims, token.Claims)
			ctx.Set(common.CtxKeys.UID, token.UID)
			ctx.Set(common.CtxKeys.Email, email)

			if name, ok := token.Claims["name"].(string); ok {
				ctx.Set(common.CtxKeys.Name, name)
			}

			l.SetLabels(map[string]string{
				common.CtxKeys.Email: email,
				common.CtxKeys.UID:   token.UID,
			})

			l.Printf("request executed by email [%s] uid [%s]", email, token.UID)

			return handler(ctx)
		}

		return h
	}

	return f
}
