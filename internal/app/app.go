package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	dispatchredis "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch/redis"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	eventmemory "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event/memory"
	eventpostgres "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event/postgres"
	eventredis "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event/redis"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/internal/database"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/metrics"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	rulememory "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule/memory"
	rulepostgres "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule/postgres"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
	submemory "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription/memory"
	subpostgres "github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription/postgres"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/trigger"
)

/* App wires the engine for one storage backend. It is shared by cmd/api and cmd/dispatch.
 *   memory:   everything in process, single instance only
 *   postgres: rules, subscriptions and events in PostgreSQL
 *   redis:    events, dispatch lock and heartbeats in Redis; rules and subscriptions
 *             in PostgreSQL when DATABASE_URL is set, in memory otherwise
 */
type App struct {
	Rules      *rule.Engine
	Queue      *event.Queue
	Registry   *subscription.Registry
	Notifier   *trigger.Service
	Dispatcher *dispatch.Dispatcher
	Collector  *metrics.QueueCollector

	closers []func(ctx context.Context) error
}

type stores struct {
	rules      rule.Repository
	subs       subscription.Repository
	events     event.Repository
	locker     dispatch.Locker
	heartbeats dispatch.HeartbeatStore
}

// New builds the engine described by cfg
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{}

	s, err := a.openStores(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.Rules = rule.NewEngine(s.rules, nil)
	a.Queue = event.NewQueue(s.events, event.RetryPolicy{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.RetryInitialBackoff,
		MaxBackoff:     cfg.RetryMaxBackoff,
	})
	a.Registry = subscription.NewRegistry(s.subs)
	a.Notifier = trigger.NewService(a.Rules, a.Queue, logger.With().Str("component", "trigger").Logger())
	a.Dispatcher = dispatch.NewDispatcher(
		a.Queue,
		a.Registry,
		dispatch.NewHTTPSender(cfg.DeliveryTimeout),
		dispatch.Config{
			BatchSize:       cfg.DispatchBatchSize,
			DeliveryTimeout: cfg.DeliveryTimeout,
			InstanceID:      cfg.InstanceID,
		},
		logger.With().Str("component", "dispatcher").Logger(),
	).WithLocker(s.locker).WithHeartbeats(s.heartbeats)
	a.Collector = metrics.NewQueueCollector(s.events, s.heartbeats)

	if cfg.RulesFile != "" {
		loader := rule.NewLoader(a.Rules.Matchers)
		if err := loader.Load(cfg.RulesFile); err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("loading rules: %w", err)
		}
		inserted, err := loader.Seed(ctx, s.rules)
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("seeding rules: %w", err)
		}
		logger.Info().Str("file", cfg.RulesFile).Int("inserted", inserted).Msg("rules seeded")
	}

	return a, nil
}

func (a *App) openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	s := stores{
		locker:     dispatch.NewLocalLocker(),
		heartbeats: dispatch.NewMemoryHeartbeats(cfg.HeartbeatTTL),
	}

	var db *sql.DB
	if cfg.StorageBackend == config.BackendPostgres || (cfg.StorageBackend == config.BackendRedis && cfg.DatabaseURL != "") {
		var err error
		db, err = database.Open(ctx, cfg.DatabaseURL, database.DefaultPoolConfig())
		if err != nil {
			return s, err
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })

		if err := database.Migrate(ctx, db); err != nil {
			return s, err
		}
	}

	if db != nil {
		s.rules = rulepostgres.NewRepository(db)
		s.subs = subpostgres.NewRepository(db)
	} else {
		s.rules = rulememory.NewRepository()
		s.subs = submemory.NewRepository()
	}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		s.events = eventmemory.NewRepository()
	case config.BackendPostgres:
		s.events = eventpostgres.NewRepository(db)
	case config.BackendRedis:
		repo, err := eventredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return s, err
		}
		repo.WithRetention(cfg.EventRetention)
		a.closers = append(a.closers, repo.Close)

		client := repo.GetClient()
		s.events = repo
		s.locker = dispatchredis.NewLocker(client, cfg.LockTTL)
		s.heartbeats = dispatchredis.NewHeartbeatStore(client, cfg.HeartbeatTTL)
	default:
		return s, fmt.Errorf("invalid storage backend: %q", cfg.StorageBackend)
	}

	return s, nil
}

// Close releases every connection opened by New, last opened first
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
