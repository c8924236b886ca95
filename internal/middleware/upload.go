package middleware

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garagehub/garagehub-api/internal/httperr"
)

const contextUploadPath = "uploadPath"

// Upload stages a multipart image on local disk before the handler
// forwards it to external storage. Missing files are not an error here;
// handlers that require the file check for the staged path themselves.
func Upload(field, tempDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(field)
		if err != nil {
			c.Next()
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			httperr.BadRequest(c, "Only image files are allowed")
			c.Abort()
			return
		}

		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			httperr.Internal(c, "Failed to stage uploaded file")
			c.Abort()
			return
		}

		dst := filepath.Join(tempDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			httperr.Internal(c, "Failed to stage uploaded file")
			c.Abort()
			return
		}

		c.Set(contextUploadPath, dst)
		c.Next()
	}
}

// StagedFile returns the staged upload path, if any.
func StagedFile(c *gin.Context) (string, bool) {
	v, exists := c.Get(contextUploadPath)
	if !exists {
		return "", false
	}
	path, ok := v.(string)
	return path, ok && path != ""
}
