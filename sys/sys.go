package sys

import (
	"database/sql"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-service/platform/env"
	"go.uber.org/zap"
)

// Config contains all the configs gathered from env vars
type Config struct {
	Debug bool
	Http  struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		// TrustedProxies may set the client ip through X-Forwarded-For. Empty trusts nobody.
		TrustedProxies  []string
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Database struct {
		Driver           string
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		NotesTTL         time.Duration
		NoteTTL          time.Duration
	}
	Auth struct {
		SecretKey         string
		Algorithm         string
		AccessTokenExpire time.Duration
	}
	RateLimit struct {
		Requests int
		Window   time.Duration
	}
	Messaging struct {
		QueueURL        string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	Email struct {
		SendDelay time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// LoadDatabase fills the database section of c
func (c *Config) LoadDatabase(log *zap.SugaredLogger) {
	c.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	c.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	c.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	c.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
}

// LoadCache fills the cache section of c
func (c *Config) LoadCache(log *zap.SugaredLogger) {
	c.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	c.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	c.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	c.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	c.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "1s")
	c.Cache.NotesTTL = env.DurationDefault(log, "CACHE_NOTES_TTL", "60s")
	c.Cache.NoteTTL = env.DurationDefault(log, "CACHE_NOTE_TTL", "60s")
}

// LoadMessaging fills the messaging and email sections of c
func (c *Config) LoadMessaging(log *zap.SugaredLogger) {
	c.Messaging.QueueURL = env.OrDefault(log, "MESSAGING_QUEUE_URL", "")
	c.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	c.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	c.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	c.Email.SendDelay = env.DurationDefault(log, "EMAIL_SEND_DELAY", "5s")
}

// LoadNewRelic fills the new relic section of c
func (c *Config) LoadNewRelic(log *zap.SugaredLogger, appName string) {
	c.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", appName)
	c.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	c.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	c.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	c.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}

// LoadAPI builds the full config used by the http api
func LoadAPI(log *zap.SugaredLogger) Config {
	var c Config
	c.Debug = env.BoolDefault(log, "DEBUG", "f")
	c.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	c.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	c.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	c.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	c.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	c.Http.TrustedProxies = env.ListDefault(log, "HTTP_TRUSTED_PROXIES", "")
	c.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	c.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+c.Http.Port)
	c.LoadDatabase(log)
	c.LoadCache(log)
	c.Auth.SecretKey = env.Must(log, "AUTH_SECRET_KEY")
	c.Auth.Algorithm = env.OrDefault(log, "AUTH_ALGORITHM", "HS256")
	c.Auth.AccessTokenExpire = env.DurationDefault(log, "AUTH_ACCESS_TOKEN_EXPIRE", "30m")
	c.RateLimit.Requests = env.IntDefault(log, "RATE_LIMIT_REQUESTS", "5")
	c.RateLimit.Window = env.DurationDefault(log, "RATE_LIMIT_WINDOW", "60s")
	c.LoadMessaging(log)
	c.LoadNewRelic(log, "notes-api")
	return c
}

// Resources holds the static resources a process hands to its components
type Resources struct {
	Log      *zap.SugaredLogger
	Cache    *redis.Client
	Database *sql.DB
}
