package repositories

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
	"github.com/hjortab/hjort-api/validation"
)

// CourseMenuRepo covers both the course menu and its child courses,
// mirroring how the admin panel edits them together.
type CourseMenuRepo interface {
	FindAllCourseMenus() ([]models.CourseMenu, error)
	UpdateCourseMenu(id string, payload validation.CourseMenuPayload) error
	ExistsCourseMenu(id string) (bool, error)
	FindAllCoursesByMenuID(menuID string) ([]models.Course, error)
	InsertCourse(payload validation.CoursePayload) error
	UpdateCourse(id string, payload validation.CourseUpdatePayload) error
	DeleteCourseByID(id string) error
	ExistsCourse(id string) (bool, error)
}

type GormCourseMenuRepo struct {
	db *gorm.DB
}

func NewGormCourseMenuRepo(db *gorm.DB) *GormCourseMenuRepo {
	return &GormCourseMenuRepo{db: db}
}

func (r *GormCourseMenuRepo) FindAllCourseMenus() ([]models.CourseMenu, error) {
	menus := make([]models.CourseMenu, 0)
	if err := r.db.Order("id ASC").Find(&menus).Error; err != nil {
		utils.ErrorLogger.Printf("Database course menu lookup error: %v", err)
		return nil, err
	}
	return menus, nil
}

func (r *GormCourseMenuRepo) UpdateCourseMenu(id string, payload validation.CourseMenuPayload) error {
	err := r.db.Model(&models.CourseMenu{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     payload.Title,
			"price_tot": payload.PriceTot,
		}).Error
	if err != nil {
		utils.ErrorLogger.Printf("Database course menu update error: %v", err)
		return err
	}
	return nil
}

func (r *GormCourseMenuRepo) ExistsCourseMenu(id string) (bool, error) {
	return rowExists(r.db, &models.CourseMenu{}, id)
}

func (r *GormCourseMenuRepo) FindAllCoursesByMenuID(menuID string) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := r.db.Where("course_menu_id = ?", menuID).Order("id ASC").Find(&courses).Error; err != nil {
		utils.ErrorLogger.Printf("Database course lookup error: %v", err)
		return nil, err
	}
	return courses, nil
}

func (r *GormCourseMenuRepo) InsertCourse(payload validation.CoursePayload) error {
	// The service has already confirmed the parent menu exists, so the
	// id string is guaranteed numeric here.
	menuID, err := strconv.ParseUint(payload.CourseMenuID, 10, 32)
	if err != nil {
		utils.ErrorLogger.Printf("Database course insertion error: %v", err)
		return err
	}
	course := models.Course{
		CourseMenuID: uint(menuID),
		Name:         payload.Name,
		Type:         payload.Type,
	}
	if err := r.db.Create(&course).Error; err != nil {
		utils.ErrorLogger.Printf("Database course insertion error: %v", err)
		return err
	}
	return nil
}

func (r *GormCourseMenuRepo) UpdateCourse(id string, payload validation.CourseUpdatePayload) error {
	err := r.db.Model(&models.Course{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name": payload.Name,
			"type": payload.Type,
		}).Error
	if err != nil {
		utils.ErrorLogger.Printf("Database course update error: %v", err)
		return err
	}
	return nil
}

func (r *GormCourseMenuRepo) DeleteCourseByID(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.Course{}).Error; err != nil {
		utils.ErrorLogger.Printf("Database course deletion error: %v", err)
		return err
	}
	return nil
}

func (r *GormCourseMenuRepo) ExistsCourse(id string) (bool, error) {
	return rowExists(r.db, &models.Course{}, id)
}
