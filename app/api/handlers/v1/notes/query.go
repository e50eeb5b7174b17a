package notes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

// Query godoc
// @Summary List notes
// @Description Lists the notes of the authenticated user ordered by id. search matches title or content ignoring case.
// @Tags Note
// @Produce json
// @Security Bearer
// @Param skip query int false "Notes to skip" default(0)
// @Param limit query int false "Max notes returned" default(10)
// @Param search query string false "Text to search"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /notes/ [get]
func (h Handlers) Query(ctx *gin.Context) handler.Result {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil {
		return handler.Fail(http.StatusUnprocessableEntity, "skip must be an integer")
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(note.DefaultLimit)))
	if err != nil {
		return handler.Fail(http.StatusUnprocessableEntity, "limit must be an integer")
	}

	notes, err := h.Notes.Query(ctx.Request.Context(), mid.Actor(ctx).Id, note.Filter{
		Skip:   skip,
		Limit:  limit,
		Search: ctx.Query("search"),
	})
	if err != nil {
		return h.fail("query notes", err)
	}
	return handler.Result{Status: http.StatusOK, Body: notes}
}

// Cached godoc
// @Summary List every note
// @Description Lists the notes of every user. The result is cached for a short while.
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Router /notes [get]
func (h Handlers) Cached(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.QueryCached(ctx.Request.Context())
	if err != nil {
		return h.fail("query cached notes", err)
	}
	return handler.Result{Status: http.StatusOK, Body: notes}
}
