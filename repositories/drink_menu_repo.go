package repositories

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
	"github.com/hjortab/hjort-api/validation"
)

// DrinkMenuRepo mirrors CourseMenuRepo for the drink menu and its
// child drinks.
type DrinkMenuRepo interface {
	FindAllDrinkMenus() ([]models.DrinkMenu, error)
	UpdateDrinkMenu(id string, payload validation.DrinkMenuPayload) error
	ExistsDrinkMenu(id string) (bool, error)
	FindAllDrinksByMenuID(menuID string) ([]models.Drink, error)
	InsertDrink(payload validation.DrinkPayload) error
	UpdateDrink(id string, payload validation.DrinkUpdatePayload) error
	DeleteDrinkByID(id string) error
	ExistsDrink(id string) (bool, error)
}

type GormDrinkMenuRepo struct {
	db *gorm.DB
}

func NewGormDrinkMenuRepo(db *gorm.DB) *GormDrinkMenuRepo {
	return &GormDrinkMenuRepo{db: db}
}

func (r *GormDrinkMenuRepo) FindAllDrinkMenus() ([]models.DrinkMenu, error) {
	menus := make([]models.DrinkMenu, 0)
	if err := r.db.Order("id ASC").Find(&menus).Error; err != nil {
		utils.ErrorLogger.Printf("Database drink menu lookup error: %v", err)
		return nil, err
	}
	return menus, nil
}

func (r *GormDrinkMenuRepo) UpdateDrinkMenu(id string, payload validation.DrinkMenuPayload) error {
	err := r.db.Model(&models.DrinkMenu{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     payload.Title,
			"subtitle":  payload.Subtitle,
			"price_tot": payload.PriceTot,
		}).Error
	if err != nil {
		utils.ErrorLogger.Printf("Database drink menu update error: %v", err)
		return err
	}
	return nil
}

func (r *GormDrinkMenuRepo) ExistsDrinkMenu(id string) (bool, error) {
	return rowExists(r.db, &models.DrinkMenu{}, id)
}

func (r *GormDrinkMenuRepo) FindAllDrinksByMenuID(menuID string) ([]models.Drink, error) {
	drinks := make([]models.Drink, 0)
	if err := r.db.Where("drink_menu_id = ?", menuID).Order("id ASC").Find(&drinks).Error; err != nil {
		utils.ErrorLogger.Printf("Database drink lookup error: %v", err)
		return nil, err
	}
	return drinks, nil
}

func (r *GormDrinkMenuRepo) InsertDrink(payload validation.DrinkPayload) error {
	menuID, err := strconv.ParseUint(payload.DrinkMenuID, 10, 32)
	if err != nil {
		utils.ErrorLogger.Printf("Database drink insertion error: %v", err)
		return err
	}
	drink := models.Drink{
		DrinkMenuID: uint(menuID),
		Name:        payload.Name,
	}
	if err := r.db.Create(&drink).Error; err != nil {
		utils.ErrorLogger.Printf("Database drink insertion error: %v", err)
		return err
	}
	return nil
}

func (r *GormDrinkMenuRepo) UpdateDrink(id string, payload validation.DrinkUpdatePayload) error {
	err := r.db.Model(&models.Drink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": payload.Name}).Error
	if err != nil {
		utils.ErrorLogger.Printf("Database drink update error: %v", err)
		return err
	}
	return nil
}

func (r *GormDrinkMenuRepo) DeleteDrinkByID(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.Drink{}).Error; err != nil {
		utils.ErrorLogger.Printf("Database drink deletion error: %v", err)
		return err
	}
	return nil
}

func (r *GormDrinkMenuRepo) ExistsDrink(id string) (bool, error) {
	return rowExists(r.db, &models.Drink{}, id)
}
