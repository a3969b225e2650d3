// Package logger builds log/slog loggers with functional options and a
// handful of attribute helpers that keep key names consistent across the
// dashboard packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvDevelopment, "formcheck"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.Debug("field validated", logger.FormID(id), logger.Field("phone"))
//
// New picks slog's text or JSON handler, applies static attributes and wraps
// it with LogHandlerDecorator, which runs the registered ContextExtractor
// functions on every record.
//
// Error and Outcome drop empty values, so they can be passed without nil
// checks at the call site.
package logger
