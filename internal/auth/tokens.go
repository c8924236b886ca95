package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/garagehub/garagehub-api/internal/config"
	"github.com/garagehub/garagehub-api/internal/models"
)

// NewAccessToken signs a short-lived token bound to a redis session id.
func NewAccessToken(cfg *config.Config, user *models.User, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"sid":      sessionID,
		"exp":      now.Add(cfg.AccessTokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.AccessTokenSecret))
}

// NewRefreshToken signs the long-lived token that is also persisted on
// the user row for comparison at refresh time.
func NewRefreshToken(cfg *config.Config, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(cfg.RefreshTokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.RefreshTokenSecret))
}

func ParseAccessToken(cfg *config.Config, raw string) (Identity, error) {
	claims, err := parseHMAC(raw, cfg.AccessTokenSecret)
	if err != nil {
		return Identity{}, err
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}
	role, _ := claims["role"].(string)
	sid, _ := claims["sid"].(string)

	return Identity{UserID: uint(sub), Role: role, SessionID: sid}, nil
}

func ParseRefreshToken(cfg *config.Config, raw string) (uint, error) {
	claims, err := parseHMAC(raw, cfg.RefreshTokenSecret)
	if err != nil {
		return 0, err
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint(sub), nil
}

func parseHMAC(raw, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenMalformed
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
