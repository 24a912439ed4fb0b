// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and health-check handlers.
//
// Construction uses functional options (New) or an env-tagged Config
// (NewFromConfig). Run blocks until the context is cancelled or an
// interrupt/TERM signal arrives, then drains connections within the shutdown
// deadline. Startup and shutdown failures are wrapped with the ErrStart and
// ErrShutdown sentinels for errors.Is inspection.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(func(l *slog.Logger) {
//	        l.Info("listening", slog.String("addr", cfg.Addr))
//	    }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler mounts as both probe kinds: with no dependency checks it
// reports liveness, with checks it reports readiness.
package httpserver
