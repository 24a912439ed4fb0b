package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that injects the request
// ID into every log record carrying one in its context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
