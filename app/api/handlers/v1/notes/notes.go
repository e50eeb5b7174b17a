// Package notes holds the note endpoints. Every route but the cached list
// acts on the notes of the authenticated user only.
package notes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/failure"
	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"go.uber.org/zap"
)

type Handlers struct {
	Log   *zap.SugaredLogger
	Notes *note.Core
}

func (h Handlers) fail(op string, err error) handler.Result {
	if errors.Is(err, errs.ErrNotFound) {
		return handler.Fail(http.StatusNotFound, "Note not found")
	}
	return failure.Result(h.Log, op, err)
}

func noteID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func invalidID() handler.Result {
	return handler.Fail(http.StatusUnprocessableEntity, "invalid id")
}
