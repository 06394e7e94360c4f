package middleware

import (
	"context"

	"github.com/angelmondragon/modeststyle-backend/internal/access"
)

type contextKey string

const (
	ctxClientSession contextKey = "client_session"
	ctxAccess        contextKey = "access_session"
)

// ClientSessionFromContext returns the anonymous session id that keys carts,
// wishlists and checkout drafts.
func ClientSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxClientSession).(string); ok {
		return v
	}
	return ""
}

func WithClientSession(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxClientSession, id)
}

// AccessSessionFromContext returns the signed-in identity, or nil for anonymous callers.
func AccessSessionFromContext(ctx context.Context) *access.Session {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxAccess).(*access.Session); ok {
		return v
	}
	return nil
}

func WithAccessSession(ctx context.Context, session *access.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccess, session)
}
