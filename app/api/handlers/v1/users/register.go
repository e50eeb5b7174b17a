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

// Register godoc
// @Summary Register an account
// @Description Creates an account with the user role
// @Tags User
// @Accept json
// @Produce json
// @Param user body user.NewUser true "Account"
// @Success 200 {object} user.User
// @Failure 400 {object} handler.Error
// @Router /register/ [post]
func (h Handlers) Register(ctx *gin.Context) handler.Result {
	var nu user.NewUser
	if err := ctx.ShouldBindJSON(&nu); err != nil {
		return handler.Fail(http.StatusBadRequest, "invalid body")
	}

	created, err := h.Users.Register(ctx.Request.Context(), nu)
	switch {
	case errors.Is(err, errs.ErrValidation):
		r := failure.Result(h.Log, "register", err)
		r.Status = http.StatusBadRequest
		return r
	case err != nil:
		return failure.Result(h.Log, "register", err)
	}
	return handler.Result{Status: http.StatusOK, Body: created}
}
