// Package logger builds slog loggers for inputkit services.
//
// New returns a *slog.Logger configured through Option functions: output
// format (JSON or text), level, static attributes and ContextExtractor
// callbacks that add request-scoped attributes (request IDs, client IPs,
// session IDs) to every record logged with a context.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "billing"),
//	    logger.WithContextExtractors(clientip.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "session resumed", logger.SessionID(id))
//
// NewFromConfig reads the same settings from a Config populated by
// pkg/config. Attribute helpers such as Error and SessionID return an empty
// slog.Attr for empty input, so callers can log them without nil checks.
// Libraries that accept a logger default to Discard.
package logger
