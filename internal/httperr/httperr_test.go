package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestWrite(t *testing.T) {
	w := record(func(c *gin.Context) { NotFound(c, "gone") })

	assert.Equal(t, http.StatusNotFound, w.Code)

	var out HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, http.StatusNotFound, out.StatusCode)
	assert.Equal(t, "gone", out.Message)
	assert.False(t, out.Success)
}

func TestFromBusinessError(t *testing.T) {
	w := record(func(c *gin.Context) { From(c, ErrConflict("already there")) })

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already there")
}

func TestFromWrappedBusinessError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrForbidden("no"))
	w := record(func(c *gin.Context) { From(c, wrapped) })

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFromUnknownError(t *testing.T) {
	w := record(func(c *gin.Context) { From(c, errors.New("boom")) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.NotContains(t, w.Body.String(), "boom")
}
