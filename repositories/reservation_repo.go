package repositories

import (
	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
	"github.com/hjortab/hjort-api/validation"
)

// ReservationRepo is the persistence contract for reservations.
// Implementations never interpret storage faults, they log and
// propagate them unchanged.
type ReservationRepo interface {
	FindAll() ([]models.Reservation, error)
	Insert(payload validation.ReservationPayload) error
	DeleteByID(id string) error
	Exists(id string) (bool, error)
}

type GormReservationRepo struct {
	db *gorm.DB
}

func NewGormReservationRepo(db *gorm.DB) *GormReservationRepo {
	return &GormReservationRepo{db: db}
}

func (r *GormReservationRepo) FindAll() ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)
	if err := r.db.Order("id ASC").Find(&reservations).Error; err != nil {
		utils.ErrorLogger.Printf("Database reservation lookup error: %v", err)
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepo) Insert(payload validation.ReservationPayload) error {
	reservation := models.Reservation{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		PhoneNumber:     payload.PhoneNumber,
		Email:           payload.Email,
		Message:         payload.Message,
		GuestAmount:     payload.GuestAmount,
		ReservationDate: payload.ReservationDate,
	}
	if err := r.db.Create(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("Database reservation insertion error: %v", err)
		return err
	}
	return nil
}

func (r *GormReservationRepo) DeleteByID(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
		utils.ErrorLogger.Printf("Database reservation deletion error: %v", err)
		return err
	}
	return nil
}

func (r *GormReservationRepo) Exists(id string) (bool, error) {
	return rowExists(r.db, &models.Reservation{}, id)
}
