package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func uploadRouter(tempDir string) (*gin.Engine, *string) {
	var staged string
	r := gin.New()
	r.POST("/upload", Upload("image", tempDir), func(c *gin.Context) {
		if path, ok := StagedFile(c); ok {
			staged = path
		}
		c.Status(http.StatusOK)
	})
	return r, &staged
}

func TestUploadStagesFile(t *testing.T) {
	tempDir := t.TempDir()
	r, staged := uploadRouter(tempDir)

	body, contentType := multipartBody(t, "image", "avatar.png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, *staged)

	data, err := os.ReadFile(*staged)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestUploadRejectsNonImage(t *testing.T) {
	r, staged := uploadRouter(t.TempDir())

	body, contentType := multipartBody(t, "image", "notes.pdf", []byte("pdf"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image files are allowed")
	assert.Empty(t, *staged)
}

func TestUploadMissingFileIsFine(t *testing.T) {
	r, staged := uploadRouter(t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *staged)
}
