package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the authenticated user using its id
// @Tags Note
// @Produce json
// @Security Bearer
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return invalidID()
	}

	found, err := h.Notes.Find(ctx.Request.Context(), mid.Actor(ctx).Id, id)
	if err != nil {
		return h.fail("find note", err)
	}
	return handler.Result{Status: http.StatusOK, Body: found}
}
