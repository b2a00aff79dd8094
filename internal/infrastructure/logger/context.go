package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const loggerCtxKey ctxKey = iota

// WithContext attaches l to ctx for later retrieval with FromContext.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, l)
}

// FromContext returns the logger attached to ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithUserID enriches the context logger with the authenticated user id.
func WithUserID(ctx context.Context, l *zap.Logger, userID string) (context.Context, *zap.Logger) {
	return withField(ctx, l, zap.String("user_id", userID))
}

// WithCompanyID enriches the context logger with the tenant company id.
func WithCompanyID(ctx context.Context, l *zap.Logger, companyID string) (context.Context, *zap.Logger) {
	return withField(ctx, l, zap.String("company_id", companyID))
}

func withField(ctx context.Context, l *zap.Logger, f zap.Field) (context.Context, *zap.Logger) {
	enriched := l.With(f)
	return WithContext(ctx, enriched), enriched
}
