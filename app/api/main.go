package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/ribgsilva/note-service/app/api/docs"
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
	userstore "github.com/ribgsilva/note-service/persistence/v1/user"
	"github.com/ribgsilva/note-service/platform/database"
	"github.com/ribgsilva/note-service/platform/logger"
	"github.com/ribgsilva/note-service/platform/web/middleware"
	"github.com/ribgsilva/note-service/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/awssnssqs"
	"gocloud.dev/pubsub/mempubsub"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// @title Note API
// @version 1.0
// @description Service to store and share notes.
// @contact.name Gabriel Ribeiro Silva
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	log, err := logger.New("Notes-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	cfg := sys.LoadAPI(log)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// =======================================================================================================
	// Setup static resources
	r := sys.Resources{Log: log}

	// database
	db, err := database.Open(cfg.Database.Driver, cfg.Database.ConnectionURL, cfg.Database.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()
	r.Database = db

	if err := schema.Create(context.Background(), log, db, cfg.Database.Driver); err != nil {
		return err
	}

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.ConnectionURL,
			Username: cfg.Cache.User,
			Password: cfg.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), cfg.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		_ = rdb.Close()
	}()
	r.Cache = rdb

	// email job topic
	topic, err := openTopic(log, cfg)
	if err != nil {
		return err
	}
	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), cfg.Messaging.ShutdownTimeout)
		defer stdCancel()
		if err := topic.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop topic gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
		return err
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Business cores

	tokens, err := auth.NewTokens(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenExpire)
	if err != nil {
		return err
	}

	api := handlers.Config{
		Log:   r.Log,
		Users: user.NewCore(r.Log, userstore.NewStore(r.Database, cfg.Database.OperationTimeout), tokens),
		Notes: note.NewCore(
			r.Log,
			notestore.NewStore(r.Database, cfg.Database.OperationTimeout),
			cache.New(r.Log, r.Cache, cfg.Cache.OperationTimeout),
			cfg.Cache.NotesTTL,
			cfg.Cache.NoteTTL,
		),
		Emails:  email.NewCore(r.Log, topic, cfg.Email.SendDelay),
		Hub:     broadcast.NewHub(r.Log),
		Limiter: ratelimit.NewCounter(r.Cache, cfg.RateLimit.Window, cfg.Cache.OperationTimeout),
		Limit:   cfg.RateLimit.Requests,
	}

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	// the rate limiter keys on the client ip, only listed proxies may set it
	if err := router.SetTrustedProxies(cfg.Http.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
	}), gin.Recovery(), nrgin.Middleware(nrApp), middleware.Logger(log, "/health"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	router.Use(middleware.Metrics(reg, "/health", "/metrics"))

	handlers.MapDefaults(router)
	handlers.MapMetrics(router, reg)
	handlers.MapApi(router, api)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", cfg.Swagger.Protocol, cfg.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

// openTopic opens the sqs queue the messaging process consumes. Without a
// queue url jobs go to an in memory topic nobody reads.
func openTopic(log *zap.SugaredLogger, cfg sys.Config) (*pubsub.Topic, error) {
	if cfg.Messaging.QueueURL == "" {
		log.Warnw("startup", "messaging", "MESSAGING_QUEUE_URL not set, email jobs will not be delivered")
		return mempubsub.NewTopic(), nil
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return awssnssqs.OpenSQSTopicV2(context.Background(), sqs.NewFromConfig(awsCfg), cfg.Messaging.QueueURL, nil), nil
}
