package services

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/repositories"
	"github.com/hjortab/hjort-api/utils"
	"github.com/hjortab/hjort-api/validation"
)

// loginFailedMessage is identical for the unknown-username and the
// wrong-password case so responses never reveal which part failed.
const loginFailedMessage = "An admin user with this username or password does not exist!"

type AdminUserService struct {
	repo repositories.AdminUserRepo
}

func NewAdminUserService(repo repositories.AdminUserRepo) *AdminUserService {
	return &AdminUserService{repo: repo}
}

// LoginUser authenticates the admin and returns a signed token with a
// one hour expiry.
func (s *AdminUserService) LoginUser(payload validation.AdminUserPayload) (string, error) {
	user, err := s.repo.FindByUsername(payload.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.NewWithStatus("login", loginFailedMessage, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.PasswordHash)); err != nil {
		return "", apperrors.NewWithStatus("login", loginFailedMessage, http.StatusUnauthorized)
	}

	return utils.GenerateToken(user.ID)
}
