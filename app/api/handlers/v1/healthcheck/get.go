package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/platform/web/handler"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /health [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: Status{Status: "ok"}}
}
