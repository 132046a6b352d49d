package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
	"github.com/hjortab/hjort-api/validation"
)

type fakeAdminUserRepo struct {
	user *models.AdminUser
}

func (f *fakeAdminUserRepo) FindByUsername(username string) (*models.AdminUser, error) {
	if f.user != nil && f.user.Username == username {
		return f.user, nil
	}
	return nil, nil
}

func adminWithPassword(t *testing.T, password string) *models.AdminUser {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hashed)}
}

func TestLoginMintsToken(t *testing.T) {
	utils.InitLogger()
	service := NewAdminUserService(&fakeAdminUserRepo{user: adminWithPassword(t, "correct-horse")})

	token, err := service.LoginUser(validation.AdminUserPayload{
		Username:     "admin",
		PasswordHash: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 1, claims.ID)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	utils.InitLogger()
	service := NewAdminUserService(&fakeAdminUserRepo{user: adminWithPassword(t, "correct-horse")})

	_, wrongPassword := service.LoginUser(validation.AdminUserPayload{
		Username:     "admin",
		PasswordHash: "nope",
	})
	_, unknownUser := service.LoginUser(validation.AdminUserPayload{
		Username:     "ghost",
		PasswordHash: "correct-horse",
	})

	for _, err := range []error{wrongPassword, unknownUser} {
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "login", domainErr.Field)
		assert.Equal(t, http.StatusUnauthorized, domainErr.StatusCode)
		assert.Equal(t, "An admin user with this username or password does not exist!", domainErr.Message)
	}
}
