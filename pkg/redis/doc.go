// Package redis bootstraps the Redis layer: connection with retry, an
// env-tagged Config, and a health probe.
//
// Connect parses the configured URL, then pings the server in a retry loop
// bounded by ConnectTimeout. Failures surface as the
// ErrFailedToParseRedisConnString and ErrRedisNotReady sentinels.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
