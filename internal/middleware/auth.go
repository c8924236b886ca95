package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/garagehub/garagehub-api/internal/auth"
	"github.com/garagehub/garagehub-api/internal/config"
	"github.com/garagehub/garagehub-api/internal/httperr"
)

const contextIdentity = "identity"

// SessionChecker is the slice of the session store the gate needs.
type SessionChecker interface {
	Has(ctx context.Context, sessionID string) (bool, error)
}

// AuthMiddleware accepts the access token from the accessToken cookie
// or a bearer header, verifies it and its backing session, and seeds
// the request with one Identity for the handlers downstream.
func AuthMiddleware(cfg *config.Config, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			httperr.Unauthorized(c, "Unauthorized request")
			c.Abort()
			return
		}

		identity, err := auth.ParseAccessToken(cfg, raw)
		if err != nil {
			httperr.Unauthorized(c, "Invalid access token")
			c.Abort()
			return
		}

		if sessions != nil && identity.SessionID != "" {
			ok, err := sessions.Has(c.Request.Context(), identity.SessionID)
			if err != nil || !ok {
				httperr.Unauthorized(c, "Session expired, please login again")
				c.Abort()
				return
			}
		}

		c.Set(contextIdentity, identity)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SetIdentity seeds the context the way the gate does. Tests use it to
// exercise handlers without minting tokens.
func SetIdentity(c *gin.Context, identity auth.Identity) {
	c.Set(contextIdentity, identity)
}

// IdentityFrom extracts the authenticated identity the gate stored.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(contextIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
