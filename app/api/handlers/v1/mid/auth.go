// Package mid holds the middlewares that resolve the calling user.
package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/failure"
	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/business/v1/user"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"go.uber.org/zap"
)

const actorKey = "actor"

// Authenticate resolves the bearer token of the request to a user and
// stores it in the gin context. Requests without a valid token stop with 401.
func Authenticate(log *zap.SugaredLogger, users *user.Core) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearer(ctx.GetHeader("Authorization"))
		if !ok {
			unauthorized(ctx)
			return
		}

		actor, err := users.Authenticate(ctx.Request.Context(), token)
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			unauthorized(ctx)
			return
		case err != nil:
			r := failure.Result(log, "authenticate", err)
			ctx.AbortWithStatusJSON(r.Status, r.Body)
			return
		}

		ctx.Set(actorKey, actor)
		ctx.Next()
	}
}

// Actor returns the user set by Authenticate
func Actor(ctx *gin.Context) user.User {
	v, _ := ctx.Get(actorKey)
	actor, _ := v.(user.User)
	return actor
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(ctx *gin.Context) {
	ctx.Header("WWW-Authenticate", "Bearer")
	handler.Abort(ctx, http.StatusUnauthorized, "Could not validate credentials")
}
