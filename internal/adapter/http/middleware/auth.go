package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/auth"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// AuthMiddleware rejects requests without a valid access token and stores
// the authenticated user's id in the request context.
type AuthMiddleware struct {
	tokens  *auth.JWTManager
	metrics *metrics.Metrics
}

// NewAuthMiddleware creates a new AuthMiddleware. m may be nil.
func NewAuthMiddleware(tokens *auth.JWTManager, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, metrics: m}
}

// Wrap wraps an http.Handler with bearer token authentication.
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.unauthorized(w, "missing-header", "missing authorization header")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" {
			m.unauthorized(w, "bad-scheme", "authorization header must use the Bearer scheme")
			return
		}

		claims, err := m.tokens.VerifyAccess(token)
		if err != nil {
			m.unauthorized(w, "bad-token", "invalid or expired access token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, reason, message string) {
	if m.metrics != nil {
		m.metrics.AuthFailures.WithLabelValues(reason).Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Name:  "Unauthorized",
		Error: message,
	})
}

// UserIDFromContext returns the authenticated user's id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey).(string)
	return id, ok
}

// WithUserID returns a context carrying the given user id. Exported for
// handler tests that bypass the middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
