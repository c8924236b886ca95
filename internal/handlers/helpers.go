package handlers

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagehub/garagehub-api/internal/auth"
	"github.com/garagehub/garagehub-api/internal/httperr"
	"github.com/garagehub/garagehub-api/internal/logger"
	"github.com/garagehub/garagehub-api/internal/middleware"
)

// requireIdentity pulls the authenticated identity out of the request
// or writes the 401 and reports failure.
func requireIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == 0 {
		httperr.Unauthorized(c, "Unauthorized request")
		return auth.Identity{}, false
	}
	return identity, true
}

// paramID parses a numeric path parameter; malformed ids are a
// validation failure, not a lookup miss.
func paramID(c *gin.Context, name, invalidMsg string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, invalidMsg)
		return 0, false
	}
	return uint(id), true
}

// removeStaged drops a temp upload after the external store took it.
func removeStaged(path string) {
	if err := os.Remove(path); err != nil {
		logger.L().Warnf("failed to remove staged upload %s: %v", path, err)
	}
}
