package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Changes the fields present in the body, the others are kept
// @Tags Note
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return invalidID()
	}

	var un note.UpdateNote
	if err := ctx.ShouldBindJSON(&un); err != nil {
		return handler.Fail(http.StatusUnprocessableEntity, "invalid body")
	}

	updated, err := h.Notes.Update(ctx.Request.Context(), mid.Actor(ctx).Id, id, un)
	if err != nil {
		return h.fail("update note", err)
	}
	return handler.Result{Status: http.StatusOK, Body: updated}
}
