package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", 15*time.Minute, 720*time.Hour)

	accessToken, err := tokens.GenerateAccess("user00000000000000001", "joao@example.com")
	if err != nil {
		t.Fatalf("GenerateAccess failed: %v", err)
	}

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := NewAuthMiddleware(tokens, nil).Wrap(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "valid bearer token passes and exposes the user id",
			header:     "Bearer " + accessToken,
			wantStatus: http.StatusOK,
			wantUserID: "user00000000000000001",
		},
		{
			name:       "missing header is rejected",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme is rejected",
			header:     "Basic am9hbzpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token is rejected",
			header:     "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}
			if seenUserID != tt.wantUserID {
				t.Errorf("user id in context = %q, want %q", seenUserID, tt.wantUserID)
			}
		})
	}
}

func TestAuthMiddlewareRejectsExpiredAccessToken(t *testing.T) {
	// An access token minted with a negative duration is already expired.
	tokens := auth.NewJWTManager("test-secret", -time.Minute, 720*time.Hour)

	expired, err := tokens.GenerateAccess("user00000000000000001", "joao@example.com")
	if err != nil {
		t.Fatalf("GenerateAccess failed: %v", err)
	}

	handler := NewAuthMiddleware(tokens, nil).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("expired token must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body)
	}
}
