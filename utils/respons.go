package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hjortab/hjort-api/apperrors"
)

// ResponseError is the uniform client-facing error body. Validation
// failures answer with an array of these, every other failure with a
// single one.
type ResponseError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondDomainError(c *gin.Context, err *apperrors.DomainError) {
	c.JSON(err.StatusCode, ResponseError{
		Field:   err.Field,
		Message: err.Message,
	})
}

// RespondServerError logs the underlying cause and answers with the
// generic 500 body. The cause is never exposed to the client.
func RespondServerError(c *gin.Context, err error) {
	ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ResponseError{
		Field:   "server",
		Message: "Internal Server Error",
	})
}

func RespondValidationErrors(c *gin.Context, errs []ResponseError) {
	c.JSON(http.StatusBadRequest, errs)
}
