// Package logger provides a configurable structured logging factory built on
// log/slog with automatic context attribute extraction.
//
// The package wraps slog handlers with a decorator that pulls request-scoped
// values (request IDs, entry IDs) out of context at log time, so call sites
// never have to thread those attributes manually.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "salesdesk"),
//	    logger.WithContextValue("request_id", requestid.CtxKey),
//	)
//	logger.SetAsDefault(log)
//
// Presets cover the two common setups: WithDevelopment enables text output at
// debug level, WithProduction enables JSON output at info level. Individual
// options (WithLevel, WithFormat, WithOutput, WithAttr) override preset values
// when applied after them.
//
// Attribute helpers (Error, Component, Event, RequestID, EntryID, Duration)
// keep attribute keys consistent across the codebase:
//
//	log.Error("failed to store entry",
//	    logger.Component("commission"),
//	    logger.Error(err),
//	)
package logger
