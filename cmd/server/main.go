package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/salesdesk/modules/commission"
	"github.com/dmitrymomot/salesdesk/pkg/config"
	"github.com/dmitrymomot/salesdesk/pkg/httpserver"
	"github.com/dmitrymomot/salesdesk/pkg/i18n"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
	"github.com/dmitrymomot/salesdesk/pkg/pg"
	"github.com/dmitrymomot/salesdesk/pkg/ratelimit"
	"github.com/dmitrymomot/salesdesk/pkg/redis"
	"github.com/dmitrymomot/salesdesk/pkg/requestid"
)

type appConfig struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"salesdesk"`

	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"60"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	Server httpserver.Config
	PG     pg.Config
	Redis  redis.Config
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	translator, err := commission.NewTranslator(ctx)
	if err != nil {
		return err
	}

	store, redisClient := newLimiterStore(ctx, cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}
	limiter, err := ratelimit.NewSlidingWindow(store, cfg.RateLimitRequests, cfg.RateLimitWindow)
	if err != nil {
		return err
	}

	svc := commission.NewService(
		commission.WithStorage(commission.NewPgStorage(pool)),
		commission.WithTranslator(translator),
		commission.WithServiceLogger(log),
	)

	checks := []func(context.Context) error{pg.Healthcheck(pool)}
	if redisClient != nil {
		checks = append(checks, redis.Healthcheck(redisClient))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, checks...))
	r.Mount("/api/commission", commission.Router(commission.RouterConfig{
		Service: svc,
		Limiter: limiter,
		LangExtractor: i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(commission.SupportedLanguages...),
		),
	}))

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.InfoContext(ctx, "http server starting", slog.String("addr", cfg.Server.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.InfoContext(ctx, "http server stopped")
		}),
	)

	return srv.Run(ctx, r)
}

// newLimiterStore builds the rate limit store. Redis is preferred so every
// replica enforces one shared window; when it is unreachable the store
// degrades to in-process memory and the returned client is nil, keeping the
// service up with per-instance limiting.
func newLimiterStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (ratelimit.Store, *goredis.Client) {
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		log.WarnContext(ctx, "redis unavailable, rate limiting degrades to in-memory store", logger.Error(err))
		return ratelimit.NewMemoryStore(), nil
	}

	store, err := ratelimit.NewRedisStore(client)
	if err != nil {
		_ = client.Close()
		log.WarnContext(ctx, "redis rate limit store rejected, degrading to in-memory store", logger.Error(err))
		return ratelimit.NewMemoryStore(), nil
	}
	return store, client
}
