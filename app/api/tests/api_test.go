package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ribgsilva/note-service/app/api/handlers"
	"github.com/ribgsilva/note-service/business/v1/auth"
	"github.com/ribgsilva/note-service/business/v1/broadcast"
	"github.com/ribgsilva/note-service/business/v1/email"
	"github.com/ribgsilva/note-service/business/v1/note"
	"github.com/ribgsilva/note-service/business/v1/user"
	"github.com/ribgsilva/note-service/persistence/v1/cache"
	notestore "github.com/ribgsilva/note-service/persistence/v1/note"
	"github.com/ribgsilva/note-service/persistence/v1/ratelimit"
	"github.com/ribgsilva/note-service/persistence/v1/schema"
	"github.com/ribgsilva/note-service/platform/web/middleware"
	userstore "github.com/ribgsilva/note-service/persistence/v1/user"
	"github.com/ribgsilva/note-service/sys"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"

	_ "modernc.org/sqlite"
)

const window = time.Minute

// countingStore counts the reads that reach the database
type countingStore struct {
	*notestore.Store
	finds    int64
	queryAll int64
}

func (c *countingStore) Find(ctx context.Context, id int64) (notestore.Note, error) {
	atomic.AddInt64(&c.finds, 1)
	return c.Store.Find(ctx, id)
}

func (c *countingStore) QueryAll(ctx context.Context) ([]notestore.Note, error) {
	atomic.AddInt64(&c.queryAll, 1)
	return c.Store.QueryAll(ctx)
}

type App struct {
	t      *testing.T
	router *gin.Engine
	redis  *miniredis.Miniredis
	notes  *countingStore
	users  *user.Core
	hub    *broadcast.Hub
	sub    *pubsub.Subscription
	clock  time.Time
}

type options struct {
	limit int
}

func newApp(t *testing.T, opts ...func(*options)) *App {
	t.Helper()
	o := options{limit: 1000}
	for _, opt := range opts {
		opt(&o)
	}

	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()

	// =======================================================================================================
	// Mocks
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, schema.Create(context.Background(), log, db, "sqlite"))

	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	t.Cleanup(func() {
		_ = sub.Shutdown(context.Background())
		_ = topic.Shutdown(context.Background())
	})

	r := sys.Resources{Log: log, Cache: rdb, Database: db}

	// =======================================================================================================
	// Cores
	tokens, err := auth.NewTokens("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	a := &App{
		t:     t,
		redis: s,
		notes: &countingStore{Store: notestore.NewStore(r.Database, time.Second)},
		users: user.NewCore(r.Log, userstore.NewStore(r.Database, time.Second), tokens),
		hub:   broadcast.NewHub(r.Log),
		sub:   sub,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	router := gin.New()
	require.NoError(t, router.SetTrustedProxies(nil))
	reg := prometheus.NewRegistry()
	router.Use(middleware.Metrics(reg, "/health", "/metrics"))
	handlers.MapDefaults(router)
	handlers.MapMetrics(router, reg)
	handlers.MapApi(router, handlers.Config{
		Log:     r.Log,
		Users:   a.users,
		Notes:   note.NewCore(r.Log, a.notes, cache.New(r.Log, r.Cache, time.Second), time.Minute, time.Minute),
		Emails:  email.NewCore(r.Log, topic, 0),
		Hub:     a.hub,
		Limiter: ratelimit.NewCounter(r.Cache, window, time.Second),
		Limit:   o.limit,
		Now:     func() time.Time { return a.clock },
	})
	a.router = router
	return a
}

func (a *App) do(req *http.Request) *httptest.ResponseRecorder {
	req.RemoteAddr = "192.0.2.1:4321"
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *App) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.do(req)
}

func (a *App) register(username, password string) user.User {
	w := a.request(http.MethodPost, "/register/", "", map[string]string{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var u user.User
	decode(a.t, w, &u)
	return u
}

func (a *App) loginForm(username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *App) login(username, password string) string {
	w := a.loginForm(username, password)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var tk user.Token
	decode(a.t, w, &tk)
	return tk.AccessToken
}

func (a *App) createNote(token, title, content string) note.Note {
	w := a.request(http.MethodPost, "/notes/", token, note.NewNote{Title: title, Content: content})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var n note.Note
	decode(a.t, w, &n)
	return n
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), w.Body.String())
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e struct {
		Detail string `json:"detail"`
	}
	decode(t, w, &e)
	return e.Detail
}
