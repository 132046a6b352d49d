package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/services"
	"github.com/hjortab/hjort-api/validation"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// Create handles POST /api/public/reservations.
func (rc *ReservationController) Create(c *gin.Context) {
	payload := validation.Payload[validation.ReservationPayload](c)
	if err := rc.service.CreateReservation(payload); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// GetAll handles GET /api/protected/reservations.
func (rc *ReservationController) GetAll(c *gin.Context) {
	reservations, err := rc.service.GetAllReservations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// Delete handles DELETE /api/protected/reservations/:id.
func (rc *ReservationController) Delete(c *gin.Context) {
	if err := rc.service.DeleteReservation(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
