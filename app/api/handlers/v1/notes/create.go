package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note owned by the authenticated user
// @Tags Note
// @Accept json
// @Produce json
// @Security Bearer
// @Param note body note.NewNote true "Note"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /notes/ [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var nn note.NewNote
	if err := ctx.ShouldBindJSON(&nn); err != nil {
		return handler.Fail(http.StatusUnprocessableEntity, "invalid body")
	}

	created, err := h.Notes.Create(ctx.Request.Context(), mid.Actor(ctx).Id, nn)
	if err != nil {
		return h.fail("create note", err)
	}
	return handler.Result{Status: http.StatusOK, Body: created}
}
