// Package controllers maps service outcomes to HTTP responses. A
// controller calls exactly one service method and never touches the
// database or business rules itself.
package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/utils"
)

// respondServiceError is the single dispatch point between expected
// domain failures and everything else. Domain errors answer with their
// own status and {field, message}; anything else becomes a logged 500.
func respondServiceError(c *gin.Context, err error) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		utils.RespondDomainError(c, domainErr)
		return
	}
	utils.RespondServerError(c, err)
}
