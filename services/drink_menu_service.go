package services

import (
	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/repositories"
	"github.com/hjortab/hjort-api/validation"
)

// DrinkMenuService handles business rules for drink menus and their
// drinks.
type DrinkMenuService struct {
	repo repositories.DrinkMenuRepo
}

func NewDrinkMenuService(repo repositories.DrinkMenuRepo) *DrinkMenuService {
	return &DrinkMenuService{repo: repo}
}

func (s *DrinkMenuService) GetAllDrinkMenus() ([]models.DrinkMenu, error) {
	return s.repo.FindAllDrinkMenus()
}

func (s *DrinkMenuService) UpdateDrinkMenu(id string, payload validation.DrinkMenuPayload) error {
	exists, err := s.repo.ExistsDrinkMenu(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The drink menu with this id does not exist!")
	}
	return s.repo.UpdateDrinkMenu(id, payload)
}

func (s *DrinkMenuService) GetAllDrinksByMenuID(menuID string) ([]models.Drink, error) {
	return s.repo.FindAllDrinksByMenuID(menuID)
}

func (s *DrinkMenuService) CreateDrink(payload validation.DrinkPayload) error {
	exists, err := s.repo.ExistsDrinkMenu(payload.DrinkMenuID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("drinkMenuId", "The drink menu with this id does not exist!")
	}
	return s.repo.InsertDrink(payload)
}

func (s *DrinkMenuService) UpdateDrink(id string, payload validation.DrinkUpdatePayload) error {
	exists, err := s.repo.ExistsDrink(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The drink with this id does not exist!")
	}
	return s.repo.UpdateDrink(id, payload)
}

func (s *DrinkMenuService) DeleteDrink(id string) error {
	exists, err := s.repo.ExistsDrink(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The drink with this id does not exist!")
	}
	return s.repo.DeleteDrinkByID(id)
}
