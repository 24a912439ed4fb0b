// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// Middleware attaches an ID to every incoming request: a valid client-supplied
// "X-Request-ID" header is reused, anything else is replaced with a generated
// UUIDv4. The ID travels through the request context (WithContext/FromContext)
// and is echoed back in the response header.
//
// LoggerExtractor integrates with the logger package so every log record
// emitted while handling a request automatically carries its ID:
//
//	log := logger.New(
//	    logger.WithProduction("salesdesk"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// The package returns no errors. Invalid client IDs are silently replaced.
package requestid
