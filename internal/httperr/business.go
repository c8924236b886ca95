package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError carries the HTTP status a domain rule violation maps to,
// so usecases can decide the taxonomy and handlers just forward it.
type BusinessError struct {
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(status int, message string) error {
	return BusinessError{Status: status, Message: message}
}

func ErrValidation(message string) error {
	return ErrBusiness(http.StatusBadRequest, message)
}

func ErrUnauthorized(message string) error {
	return ErrBusiness(http.StatusUnauthorized, message)
}

func ErrForbidden(message string) error {
	return ErrBusiness(http.StatusForbidden, message)
}

func ErrNotFound(message string) error {
	return ErrBusiness(http.StatusNotFound, message)
}

func ErrConflict(message string) error {
	return ErrBusiness(http.StatusConflict, message)
}

// From converts any error into the failure envelope. Untyped errors are
// treated as internal.
func From(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Status, be.Message)
		return
	}
	Internal(c, "Something went wrong")
}
