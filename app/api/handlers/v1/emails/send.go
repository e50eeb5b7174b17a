// Package emails holds the email notification endpoint.
package emails

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/failure"
	"github.com/ribgsilva/note-service/business/v1/email"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"go.uber.org/zap"
)

type Handlers struct {
	Log    *zap.SugaredLogger
	Emails *email.Core
}

// Send godoc
// @Summary Send an email
// @Description Enqueues an email notification job and returns its id without waiting for it to run
// @Tags Email
// @Produce json
// @Param email query string true "Recipient address"
// @Success 200 {object} email.Job
// @Failure 422 {object} handler.Error
// @Failure 503 {object} handler.Error
// @Router /send-email/ [post]
func (h Handlers) Send(ctx *gin.Context) handler.Result {
	job, err := h.Emails.Enqueue(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		return failure.Result(h.Log, "send email", err)
	}
	return handler.Result{Status: http.StatusOK, Body: job}
}
