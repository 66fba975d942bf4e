package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-calendar/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/notify"
	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-calendar/internal/config"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/workers"
)

// application is the fully wired service. close releases everything open
// returns, in reverse order.
type application struct {
	router    *gin.Engine
	scheduler *workers.ReminderScheduler
	closers   []func()
}

func (a *application) close() {
	a.scheduler.Cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// needsRedis reports whether any component has to talk to redis.
func needsRedis(cfg *config.Config) bool {
	return cfg.StoreDriver == config.DriverRedis || cfg.CacheEnabled || cfg.RateLimit > 0
}

func openKeyValue(ctx context.Context, cfg *config.Config, rdb *redis.Client, checks map[string]adapterHTTP.HealthCheck) (repository.KeyValue, func(), error) {
	noop := func() {}

	var (
		driver string
		dsn    string
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Println("[STORE] Using in-memory store, data is lost on restart")
		return repository.NewInMemoryKV(), noop, nil
	case config.DriverRedis:
		log.Println("[STORE] Using redis as primary store")
		return repository.NewRedisKV(rdb), noop, nil
	case config.DriverSQLite:
		driver, dsn = "sqlite3", cfg.SQLitePath
	case config.DriverPostgres:
		driver, dsn = "pgx", cfg.Postgres.DSN()
	case config.DriverMySQL:
		driver, dsn = "mysql", cfg.MySQLDSN
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	log.Printf("[STORE] Connecting to %s...", cfg.StoreDriver)
	db, err := repository.ConnectSQL(ctx, driver, dsn)
	if err != nil {
		return nil, noop, err
	}

	kv, err := repository.NewSQLKV(db)
	if err != nil {
		db.Close()
		return nil, noop, err
	}
	if err := kv.Migrate(ctx); err != nil {
		db.Close()
		return nil, noop, err
	}
	checks["database"] = kv.Ping

	log.Printf("[STORE] %s connected successfully.", cfg.StoreDriver)
	return kv, func() { db.Close() }, nil
}

func newNotifier(ctx context.Context, cfg *config.Config) (domain.Notifier, error) {
	initial := domain.ParsePermission(cfg.NotifyPermission)

	switch cfg.NotifyChannel {
	case config.ChannelNone:
		log.Println("[NOTIFY] Notifications are not supported in this deployment")
		return nil, nil
	case config.ChannelSES:
		n, err := notify.NewSESNotifier(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESToEmail, initial)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return notify.NewLogNotifier(initial), nil
	}
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{}
	checks := make(map[string]adapterHTTP.HealthCheck)

	fail := func(err error) (*application, error) {
		for i := len(app.closers) - 1; i >= 0; i-- {
			app.closers[i]()
		}
		return nil, err
	}

	var rdb *redis.Client
	if needsRedis(cfg) {
		client, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fail(err)
		}
		rdb = client
		app.closers = append(app.closers, func() { client.Close() })
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	kv, closeKV, err := openKeyValue(ctx, cfg, rdb, checks)
	if err != nil {
		return fail(err)
	}
	app.closers = append(app.closers, closeKV)

	if cfg.CacheEnabled && cfg.StoreDriver != config.DriverRedis {
		log.Printf("[CACHE] Read-through cache enabled (ttl %s)", cfg.CacheTTL)
		kv = repository.NewCachedKV(kv, rdb, cfg.CacheTTL)
	}

	store := repository.NewKVStore(kv, cfg.StoreNamespace)

	notifier, err := newNotifier(ctx, cfg)
	if err != nil {
		return fail(err)
	}

	clock := func() time.Time { return time.Now().In(cfg.Location) }

	app.scheduler = workers.NewReminderScheduler(notifier, cfg.ReminderInterval, clock)
	notificationService := services.NewNotificationService(store, notifier, app.scheduler)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	app.closers = append(app.closers, stopWorker)
	completionWorker := workers.NewCompletionWorker(notificationService)
	completionWorker.Start(workerCtx)

	deps := adapterHTTP.RouterDependencies{
		HabitHandler:        adapterHTTP.NewHabitHandler(services.NewHabitService(store)),
		ProgressHandler:     adapterHTTP.NewProgressHandler(services.NewProgressService(store, completionWorker)),
		StatsHandler:        adapterHTTP.NewStatsHandler(services.NewStatsService(store, clock)),
		NotificationHandler: adapterHTTP.NewNotificationHandler(notificationService),
		Redis:               rdb,
		RateLimit: middleware.RateLimit{
			Limit:  cfg.RateLimit,
			Window: cfg.RateWindow,
			Prefix: cfg.StoreNamespace,
		},
		HealthChecks: checks,
		StartTime:    time.Now(),
	}

	if cfg.AuthEnabled() {
		tokens := services.NewTokenService(cfg.AuthSecret, "kanso-calendar", cfg.TokenTTL)
		deps.TokenService = tokens
		deps.AuthHandler = adapterHTTP.NewAuthHandler(services.NewAuthService(
			domain.Credentials{PassphraseHash: cfg.AuthPassphraseHash}, tokens))
		log.Println("Bearer token auth enabled")
	}

	if err := notificationService.Resume(ctx); err != nil {
		log.Printf("[REMINDER] Could not restore reminder: %v", err)
	}

	app.router = adapterHTTP.NewRouter(deps)
	return app, nil
}
