package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/failure"
	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/business/v1/user"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Login godoc
// @Summary Log in
// @Description Exchanges username and password for a bearer access token. Accepts form fields or json.
// @Tags User
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} user.Token
// @Failure 401 {object} handler.Error
// @Router /login/ [post]
func (h Handlers) Login(ctx *gin.Context) handler.Result {
	var cr user.Credentials
	if err := ctx.ShouldBind(&cr); err != nil || cr.Username == "" || cr.Password == "" {
		return invalidCredentials(ctx)
	}

	token, err := h.Users.Login(ctx.Request.Context(), cr)
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return invalidCredentials(ctx)
	case err != nil:
		return failure.Result(h.Log, "login", err)
	}
	return handler.Result{Status: http.StatusOK, Body: token}
}

func invalidCredentials(ctx *gin.Context) handler.Result {
	ctx.Header("WWW-Authenticate", "Bearer")
	return handler.Fail(http.StatusUnauthorized, "Invalid username or password")
}
