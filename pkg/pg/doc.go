// Package pg bootstraps the PostgreSQL layer: connection pooling with retry,
// goose schema migrations, a health probe, and common error helpers.
//
// Config fields are populated from environment variables. Connect opens a
// *pgxpool.Pool and retries with linear backoff until the database answers a
// ping. Migrate runs goose migrations over the same pool before the service
// starts serving traffic.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//
// Error helpers (IsNotFoundError, IsDuplicateKeyError) classify pgx errors so
// storage code does not have to inspect SQLSTATE codes directly.
package pg
