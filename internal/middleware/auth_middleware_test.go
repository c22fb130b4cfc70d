package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
)

func protected(t *testing.T) (http.Handler, *int64, *models.RoleType) {
	t.Helper()
	var gotID int64
	var gotRole models.RoleType
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFrom(r.Context())
		require.True(t, ok)
		role, ok := RoleFrom(r.Context())
		require.True(t, ok)
		gotID = id
		gotRole = role
		w.WriteHeader(http.StatusOK)
	})
	return handler, &gotID, &gotRole
}

func TestAuthenticate_ValidToken(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret", time.Hour)
	token, err := jwtSvc.GenerateToken(7, models.RoleClient)
	require.NoError(t, err)

	handler, gotID, gotRole := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Authenticate(jwtSvc)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), *gotID)
	assert.Equal(t, models.RoleClient, *gotRole)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret", time.Hour)
	handler, _, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()

	Authenticate(jwtSvc)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret", time.Hour)
	handler, _, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.here")
	rec := httptest.NewRecorder()

	Authenticate(jwtSvc)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret", -time.Minute)
	token, err := jwtSvc.GenerateToken(7, models.RoleClient)
	require.NoError(t, err)

	handler, _, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Authenticate(jwtSvc)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token_expired")
}

func TestRequireRole(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret", time.Hour)
	clientToken, err := jwtSvc.GenerateToken(5, models.RoleClient)
	require.NoError(t, err)
	landlordToken, err := jwtSvc.GenerateToken(6, models.RoleLandlord)
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := Authenticate(jwtSvc)(RequireRole(models.RoleLandlord)(handler))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+landlordToken)
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
