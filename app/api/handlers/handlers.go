package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/emails"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/mid"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/users"
	"github.com/ribgsilva/note-service/app/api/handlers/v1/ws"
	"github.com/ribgsilva/note-service/business/v1/broadcast"
	"github.com/ribgsilva/note-service/business/v1/email"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/business/v1/user"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"github.com/ribgsilva/note-service/platform/web/middleware"
	"go.uber.org/zap"
)

// Config carries everything the api routes depend on
type Config struct {
	Log     *zap.SugaredLogger
	Users   *user.Core
	Notes   *note.Core
	Emails  *email.Core
	Hub     *broadcast.Hub
	Limiter middleware.Counter
	// Limit is the number of requests a client may do per limiter window
	Limit int
	// Now is the clock of the limiter, time.Now when nil
	Now func() time.Time
}

func MapDefaults(r *gin.Engine) {
	r.GET("/health", handler.Wrapper(healthcheck.Get))
}

// MapMetrics exposes the metrics gathered by g in the prometheus text format
func MapMetrics(r *gin.Engine, g prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}

func MapApi(r *gin.Engine, cfg Config) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	api := r.Group("/", middleware.RateLimit(cfg.Log, cfg.Limiter, cfg.Limit, now))
	auth := mid.Authenticate(cfg.Log, cfg.Users)

	uh := users.Handlers{Log: cfg.Log, Users: cfg.Users}
	api.POST("/register/", handler.Wrapper(uh.Register))
	api.POST("/login/", handler.Wrapper(uh.Login))
	api.GET("/users/me/", auth, handler.Wrapper(uh.Me))
	api.GET("/admin/users/", auth, handler.Wrapper(uh.List))

	nh := notes.Handlers{Log: cfg.Log, Notes: cfg.Notes}
	api.GET("/notes", handler.Wrapper(nh.Cached))
	api.POST("/notes/", auth, handler.Wrapper(nh.Create))
	api.GET("/notes/", auth, handler.Wrapper(nh.Query))
	api.GET("/notes/:id", auth, handler.Wrapper(nh.Get))
	api.PUT("/notes/:id", auth, handler.Wrapper(nh.Update))
	api.DELETE("/notes/:id", auth, handler.Wrapper(nh.Delete))

	eh := emails.Handlers{Log: cfg.Log, Emails: cfg.Emails}
	api.POST("/send-email/", handler.Wrapper(eh.Send))

	wh := ws.Handlers{Log: cfg.Log, Hub: cfg.Hub}
	api.GET("/ws", wh.Serve)
}
