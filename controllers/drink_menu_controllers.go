package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/services"
	"github.com/hjortab/hjort-api/validation"
)

type DrinkMenuController struct {
	service *services.DrinkMenuService
}

func NewDrinkMenuController(service *services.DrinkMenuService) *DrinkMenuController {
	return &DrinkMenuController{service: service}
}

// GetAllMenus handles GET /api/public/drink-menu.
func (dc *DrinkMenuController) GetAllMenus(c *gin.Context) {
	menus, err := dc.service.GetAllDrinkMenus()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// UpdateMenu handles PUT /api/protected/drink-menu/:id.
func (dc *DrinkMenuController) UpdateMenu(c *gin.Context) {
	payload := validation.Payload[validation.DrinkMenuPayload](c)
	if err := dc.service.UpdateDrinkMenu(c.Param("id"), payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDrinksByMenuID handles GET /api/public/drink/:id, where :id is
// the parent menu id.
func (dc *DrinkMenuController) GetDrinksByMenuID(c *gin.Context) {
	drinks, err := dc.service.GetAllDrinksByMenuID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drinks)
}

// CreateDrink handles POST /api/protected/drink.
func (dc *DrinkMenuController) CreateDrink(c *gin.Context) {
	payload := validation.Payload[validation.DrinkPayload](c)
	if err := dc.service.CreateDrink(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateDrink handles PUT /api/protected/drink/:id.
func (dc *DrinkMenuController) UpdateDrink(c *gin.Context) {
	payload := validation.Payload[validation.DrinkUpdatePayload](c)
	if err := dc.service.UpdateDrink(c.Param("id"), payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteDrink handles DELETE /api/protected/drink/:id.
func (dc *DrinkMenuController) DeleteDrink(c *gin.Context) {
	if err := dc.service.DeleteDrink(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
