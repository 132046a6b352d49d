package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
)

type AdminUserRepo interface {
	// FindByUsername returns (nil, nil) when no admin user matches.
	// A storage fault is the only error condition.
	FindByUsername(username string) (*models.AdminUser, error)
}

type GormAdminUserRepo struct {
	db *gorm.DB
}

func NewGormAdminUserRepo(db *gorm.DB) *GormAdminUserRepo {
	return &GormAdminUserRepo{db: db}
}

func (r *GormAdminUserRepo) FindByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		utils.ErrorLogger.Printf("Database admin user lookup error: %v", err)
		return nil, err
	}
	return &user, nil
}
