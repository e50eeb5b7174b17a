package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/failure"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Me godoc
// @Summary Current account
// @Description Returns the account owning the access token
// @Tags User
// @Produce json
// @Security Bearer
// @Success 200 {object} user.User
// @Failure 401 {object} handler.Error
// @Router /users/me/ [get]
func (h Handlers) Me(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: mid.Actor(ctx)}
}

// List godoc
// @Summary List accounts
// @Description Lists every account. Requires the admin role.
// @Tags User
// @Produce json
// @Security Bearer
// @Success 200 {array} user.User
// @Failure 401 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Router /admin/users/ [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	users, err := h.Users.QueryAll(ctx.Request.Context(), mid.Actor(ctx))
	if err != nil {
		return failure.Result(h.Log, "list users", err)
	}
	return handler.Result{Status: http.StatusOK, Body: users}
}
