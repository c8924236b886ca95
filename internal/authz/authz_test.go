package authz

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehub/garagehub-api/internal/httperr"
)

func TestRequireOwner(t *testing.T) {
	assert.NoError(t, RequireOwner(7, 7, "denied"))
}

func TestRequireOwnerMismatch(t *testing.T) {
	err := RequireOwner(7, 8, "You are not allowed to touch this")
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusForbidden, be.Status)
	assert.Equal(t, "You are not allowed to touch this", be.Message)
}

func TestRequireOwnerZeroActor(t *testing.T) {
	err := RequireOwner(0, 8, "denied")
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Status)
}
