package sys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoadAPIDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "secret")
	c := LoadAPI(zap.NewNop().Sugar())

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, "mysql", c.Database.Driver)
	assert.Equal(t, "secret", c.Auth.SecretKey)
	assert.Equal(t, "HS256", c.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, c.Auth.AccessTokenExpire)
	assert.Equal(t, 60*time.Second, c.Cache.NotesTTL)
	assert.Equal(t, 5, c.RateLimit.Requests)
	assert.Equal(t, time.Minute, c.RateLimit.Window)
	assert.False(t, c.Debug)
	assert.False(t, c.NewRelic.Enabled)
	assert.Empty(t, c.Http.TrustedProxies)
}

func TestLoadAPIOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "secret")
	t.Setenv("AUTH_ACCESS_TOKEN_EXPIRE", "5m")
	t.Setenv("RATE_LIMIT_REQUESTS", "50")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DEBUG", "true")
	t.Setenv("HTTP_TRUSTED_PROXIES", "10.0.0.1,10.0.1.0/24")
	c := LoadAPI(zap.NewNop().Sugar())

	assert.Equal(t, 5*time.Minute, c.Auth.AccessTokenExpire)
	assert.Equal(t, 50, c.RateLimit.Requests)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.True(t, c.Debug)
	assert.Equal(t, []string{"10.0.0.1", "10.0.1.0/24"}, c.Http.TrustedProxies)
}

func TestLoadAPIRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "")
	assert.Panics(t, func() { LoadAPI(zap.NewNop().Sugar()) })
}
