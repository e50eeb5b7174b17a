// Package middleware holds the gin middlewares that know nothing about notes.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one structured line per request, skipping the given paths
func Logger(log *zap.SugaredLogger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(ctx *gin.Context) {
		if _, ok := skipped[ctx.Request.URL.Path]; ok {
			ctx.Next()
			return
		}

		start := time.Now()
		log.Infow("request", "method", ctx.Request.Method, "path", ctx.Request.URL.Path)
		ctx.Next()
		log.Infow("response",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"client", ctx.ClientIP(),
			"elapsed", time.Since(start),
		)
	}
}
