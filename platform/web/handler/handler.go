// Package handler adapts result-returning functions to gin handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns. A nil Body writes only the status.
type Result struct {
	Status int
	Body   interface{}
}

// Error is the body of every non 2xx response
type Error struct {
	Detail string `json:"detail" example:"Note not found"`
}

// Func is the signature of the api handlers
type Func func(ctx *gin.Context) Result

// Wrapper writes the Result of fn as json
func Wrapper(fn Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := fn(ctx)
		if r.Body == nil || r.Status == http.StatusNoContent {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Fail builds an error Result
func Fail(status int, detail string) Result {
	return Result{Status: status, Body: Error{Detail: detail}}
}

// Abort writes an error body and stops the middleware chain
func Abort(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, Error{Detail: detail})
}
