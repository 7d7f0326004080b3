package rest

import (
	"context"
	"net/http"
	"strings"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user-id"
	contextKeyRole   contextKey = "user-role"
)

type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Authenticate validates the bearer token and injects the caller's user
// id and role into the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			respondError(w, err)
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			respondError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, security.ErrWrongTokenType)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards admin-only routes. It must run inside Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(contextKeyRole).(string)
		if role != string(domain.UserRoleAdmin) {
			respondError(w, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", security.ErrInvalidToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", security.ErrInvalidToken
	}
	return parts[1], nil
}

// UserIDFromContext extracts the authenticated user id injected by
// Authenticate.
func UserIDFromContext(ctx context.Context) (int32, error) {
	userID, ok := ctx.Value(contextKeyUserID).(int32)
	if !ok || userID == 0 {
		return 0, security.ErrInvalidToken
	}
	return userID, nil
}
