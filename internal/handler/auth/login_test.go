// File: internal/handler/auth/login_test.go
package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"motofix-admin/internal/config"
	"motofix-admin/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	authenticateAdmin = service.AuthenticateAdmin
	issueAccessToken = service.IssueAccessToken
}

func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	cfg := config.Config{
		JWTSecret:     "testsecret",
		AdminPassword: "test-admin-pass",
		TokenTTL:      time.Minute,
	}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, "{not json")
		require.NoError(t, LoginHandler(cfg)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("password is required")}
		ctx, rec := newLoginCtx(e, `{}`)
		require.NoError(t, LoginHandler(cfg)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "password is required")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, `{"password":"wrong"}`)
		require.NoError(t, LoginHandler(cfg)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("not configured is indistinguishable from wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, `{"password":"anything"}`)
		require.NoError(t, LoginHandler(config.Config{JWTSecret: "s"})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("issue error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		issueAccessToken = func(config.Config) (string, error) { return "", errors.New("sign") }
		ctx, rec := newLoginCtx(e, `{"password":"test-admin-pass"}`)
		require.NoError(t, LoginHandler(cfg)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success returns a verifiable admin token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, `{"username":"admin","password":"test-admin-pass"}`)
		require.NoError(t, LoginHandler(cfg)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)

		body := rec.Body.String()
		start := strings.Index(body, `"access_token":"`) + len(`"access_token":"`)
		end := strings.Index(body[start:], `"`)
		claims, err := service.VerifyAccessToken(cfg, body[start:start+end])
		require.NoError(t, err)
		require.Equal(t, service.AdminRole, claims.Role)
	})
}
