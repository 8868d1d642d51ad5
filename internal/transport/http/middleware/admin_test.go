package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	jwtinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/jwt"
)

func adminRequest(claims *jwtinfra.Claims) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), ClaimsKey, claims))
	}
	return req
}

func TestRequireAdmin_NoClaims(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireAdmin(http.HandlerFunc(okHandler)).ServeHTTP(rr, adminRequest(nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireAdmin(http.HandlerFunc(okHandler)).ServeHTTP(rr, adminRequest(&jwtinfra.Claims{UserID: "u1"}))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireAdmin_Admin(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireAdmin(http.HandlerFunc(okHandler)).ServeHTTP(rr, adminRequest(&jwtinfra.Claims{UserID: "u1", IsAdmin: true}))
	assert.Equal(t, http.StatusOK, rr.Code)
}
