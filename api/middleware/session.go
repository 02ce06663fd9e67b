package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/aryangupta0810/ecart-backend/pkg/logger"
)

// SessionHeader carries the shopper's session identifier. Clients that omit
// it are assigned a fresh one, echoed back on the response.
const SessionHeader = "X-Ecart-Session"

type contextKey string

const ctxSessionID contextKey = "session_id"

// Session resolves or mints the session identifier and scopes the request
// logger to it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)

			ctx := context.WithValue(r.Context(), ctxSessionID, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the request's session identifier.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}
