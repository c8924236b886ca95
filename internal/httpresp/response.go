package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape every successful response uses.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func Write(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func OK(c *gin.Context, data any, message string) {
	Write(c, http.StatusOK, data, message)
}

func Created(c *gin.Context, data any, message string) {
	Write(c, http.StatusCreated, data, message)
}
