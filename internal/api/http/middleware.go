package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the bearer token and injects the Actor into the
// request context. Services do the role and ownership checks; this layer only
// establishes identity.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, security.ErrInvalidToken)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, security.ErrWrongTokenType)
			return
		}

		actor := service.Actor{UserID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFrom returns the Actor established by AuthMiddleware. Handlers behind
// the middleware can rely on it being present.
func actorFrom(r *http.Request) service.Actor {
	actor, _ := r.Context().Value(actorKey).(service.Actor)
	return actor
}

// RequestLogging logs each request with its duration.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
