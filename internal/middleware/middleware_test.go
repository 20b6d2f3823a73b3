package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motofix-admin/internal/config"
	"motofix-admin/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "testsecret", TokenTTL: time.Minute}
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	cfg := testConfig()

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(cfg, ctx)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(cfg, ctx)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(cfg, ctx)
	require.Error(t, err)

	// valid token
	tok, err := service.IssueAccessToken(cfg)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(cfg, ctx)
	require.NoError(t, err)
	require.Equal(t, service.AdminRole, claims.Role)
}

func TestRequireAdmin(t *testing.T) {
	cfg := testConfig()
	tok, err := service.IssueAccessToken(cfg)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAdmin(cfg)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextAdminKey).(*service.CustomClaims)
		require.Equal(t, service.AdminRole, cl.Role)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAdmin(cfg)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, service.CustomClaims{
		Role: service.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	expiredTok, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + expiredTok)
	called = false
	err = RequireAdmin(cfg)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)

	// wrong role is forbidden, not unauthorized
	nonAdmin := jwt.NewWithClaims(jwt.SigningMethodHS256, service.CustomClaims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	viewerTok, err := nonAdmin.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + viewerTok)
	called = false
	err = RequireAdmin(cfg)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}
