package ctxlogger

import (
	"context"

	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

type loggerKey struct{}

type requestIDKey struct{}

func WithLogger(ctx context.Context, logger *logs.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the request logger, or the default logger outside a request.
func GetLogger(ctx context.Context) *logs.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*logs.Logger); ok {
		return logger
	}

	return logs.Default()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
