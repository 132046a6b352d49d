package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/services"
	"github.com/hjortab/hjort-api/validation"
)

type CourseMenuController struct {
	service *services.CourseMenuService
}

func NewCourseMenuController(service *services.CourseMenuService) *CourseMenuController {
	return &CourseMenuController{service: service}
}

// GetAllMenus handles GET /api/public/course-menu.
func (cc *CourseMenuController) GetAllMenus(c *gin.Context) {
	menus, err := cc.service.GetAllCourseMenus()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// UpdateMenu handles PUT /api/protected/course-menu/:id.
func (cc *CourseMenuController) UpdateMenu(c *gin.Context) {
	payload := validation.Payload[validation.CourseMenuPayload](c)
	if err := cc.service.UpdateCourseMenu(c.Param("id"), payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCoursesByMenuID handles GET /api/public/course/:id, where :id is
// the parent menu id.
func (cc *CourseMenuController) GetCoursesByMenuID(c *gin.Context) {
	courses, err := cc.service.GetAllCoursesByMenuID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourse handles POST /api/protected/course.
func (cc *CourseMenuController) CreateCourse(c *gin.Context) {
	payload := validation.Payload[validation.CoursePayload](c)
	if err := cc.service.CreateCourse(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /api/protected/course/:id.
func (cc *CourseMenuController) UpdateCourse(c *gin.Context) {
	payload := validation.Payload[validation.CourseUpdatePayload](c)
	if err := cc.service.UpdateCourse(c.Param("id"), payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/protected/course/:id.
func (cc *CourseMenuController) DeleteCourse(c *gin.Context) {
	if err := cc.service.DeleteCourse(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
