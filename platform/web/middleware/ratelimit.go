package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"go.uber.org/zap"
)

// Counter counts one request of identity in the window holding now
type Counter interface {
	Incr(ctx context.Context, identity string, now time.Time) (int64, error)
}

// RateLimit rejects a client once it made more than limit requests in the
// current window. When the counter fails the request goes through.
func RateLimit(log *zap.SugaredLogger, counter Counter, limit int, now func() time.Time) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := ctx.ClientIP()
		count, err := counter.Incr(ctx.Request.Context(), identity, now())
		if err != nil {
			log.Warnw("ratelimit", "client", identity, "ERROR", err)
			ctx.Next()
			return
		}

		if count > int64(limit) {
			handler.Abort(ctx, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
			return
		}
		ctx.Next()
	}
}
