package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/services"
	"github.com/hjortab/hjort-api/validation"
)

type AdminUserController struct {
	service *services.AdminUserService
}

func NewAdminUserController(service *services.AdminUserService) *AdminUserController {
	return &AdminUserController{service: service}
}

// Login handles POST /api/admin/login. Bad credentials answer 401 with
// the unified login failure body.
func (ac *AdminUserController) Login(c *gin.Context) {
	payload := validation.Payload[validation.AdminUserPayload](c)
	token, err := ac.service.LoginUser(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
