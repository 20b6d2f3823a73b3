// File: internal/service/auth.go
package service

import (
	"errors"
	"fmt"
	"time"

	"motofix-admin/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const AdminRole = "admin"

var (
	// ErrNotConfigured means neither ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD
	// is set; issuance can never succeed.
	ErrNotConfigured     = errors.New("admin credentials not configured")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidToken      = errors.New("invalid token")
)

// 測試可覆寫這些變數
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthenticateAdmin checks the submitted password against the configured
// reference: the bcrypt hash when one is set, otherwise the plaintext value.
func AuthenticateAdmin(cfg config.Config, password string) error {
	if cfg.AdminPasswordHash != "" {
		if err := ComparePassword(cfg.AdminPasswordHash, password); err != nil {
			return ErrInvalidCredential
		}
		return nil
	}
	if cfg.AdminPassword != "" {
		if password != cfg.AdminPassword {
			return ErrInvalidCredential
		}
		return nil
	}
	return ErrNotConfigured
}

// IssueAccessToken 依據設定的 TTL 產生管理員 JWT
func IssueAccessToken(cfg config.Config) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminRole,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
// Malformed, badly signed and expired tokens all fail with ErrInvalidToken.
func VerifyAccessToken(cfg config.Config, tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
