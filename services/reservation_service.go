package services

import (
	"time"

	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/repositories"
	"github.com/hjortab/hjort-api/validation"
)

const maxGuestAmount = 6

// ReservationService enforces the reservation business rules before
// touching the repository.
type ReservationService struct {
	repo repositories.ReservationRepo
}

func NewReservationService(repo repositories.ReservationRepo) *ReservationService {
	return &ReservationService{repo: repo}
}

func (s *ReservationService) GetAllReservations() ([]models.Reservation, error) {
	return s.repo.FindAll()
}

// CreateReservation rejects past-dated reservations and parties larger
// than the table limit, each with a field-scoped domain error.
func (s *ReservationService) CreateReservation(payload validation.ReservationPayload) error {
	if payload.ParsedDate.Before(time.Now()) {
		return apperrors.New("reservationDate", "Reservation date must be after todays date and time.")
	}
	if payload.GuestAmount > maxGuestAmount {
		return apperrors.New("guestAmount", "Guest amount cannot exceed 6 people per reservation.")
	}
	return s.repo.Insert(payload)
}

// DeleteReservation checks existence first so an unknown id yields a
// precise domain error instead of a silent no-op.
func (s *ReservationService) DeleteReservation(id string) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The reservation with this id does not exist!")
	}
	return s.repo.DeleteByID(id)
}
