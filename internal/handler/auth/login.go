// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"motofix-admin/internal/api"
	"motofix-admin/internal/config"
	"motofix-admin/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	authenticateAdmin = service.AuthenticateAdmin
	issueAccessToken  = service.IssueAccessToken
)

// LoginHandler validates the configured admin credential and mints a signed
// access token. An unconfigured credential also answers 401 so probing cannot
// tell "no password set" apart from "wrong password".
// @Summary     Admin login
// @Description Validates the admin password and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginRequest true "login payload"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /api/login [post]
func LoginHandler(cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := authenticateAdmin(cfg, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(cfg)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
