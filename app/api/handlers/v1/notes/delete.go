package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Security Bearer
// @Param id path int true "Note id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return invalidID()
	}

	if err := h.Notes.Delete(ctx.Request.Context(), mid.Actor(ctx).Id, id); err != nil {
		return h.fail("delete note", err)
	}
	return handler.Result{Status: http.StatusNoContent}
}
