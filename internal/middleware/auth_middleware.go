package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyRole   contextKey = "role"
)

// Authenticate validates the Bearer token and injects the caller's
// identity into the request context.
func Authenticate(jwtSvc services.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized,
					utils.ErrCodeUnauthorized, "Missing or malformed Authorization header", nil)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			userID, role, err := jwtSvc.ValidateToken(token)
			if err != nil {
				code := utils.ErrCodeUnauthorized
				if errors.Is(err, jwt.ErrTokenExpired) {
					code = utils.ErrCodeTokenExpired
				}
				utils.RespondErrorWithCode(w, http.StatusUnauthorized,
					code, "Invalid or expired token", nil, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			ctx = context.WithValue(ctx, ContextKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to one role. Must run after Authenticate.
func RequireRole(role models.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := r.Context().Value(ContextKeyRole).(models.RoleType)
			if !ok || got != role {
				utils.RespondErrorWithCode(w, http.StatusForbidden,
					utils.ErrCodeForbidden, "Insufficient role for this resource", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFrom extracts the authenticated user id set by Authenticate.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(int64)
	return id, ok
}

// RoleFrom extracts the authenticated role set by Authenticate.
func RoleFrom(ctx context.Context) (models.RoleType, bool) {
	role, ok := ctx.Value(ContextKeyRole).(models.RoleType)
	return role, ok
}
