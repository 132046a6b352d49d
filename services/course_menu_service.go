package services

import (
	"github.com/hjortab/hjort-api/apperrors"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/repositories"
	"github.com/hjortab/hjort-api/validation"
)

// CourseMenuService handles business rules for course menus and their
// courses.
type CourseMenuService struct {
	repo repositories.CourseMenuRepo
}

func NewCourseMenuService(repo repositories.CourseMenuRepo) *CourseMenuService {
	return &CourseMenuService{repo: repo}
}

func (s *CourseMenuService) GetAllCourseMenus() ([]models.CourseMenu, error) {
	return s.repo.FindAllCourseMenus()
}

func (s *CourseMenuService) UpdateCourseMenu(id string, payload validation.CourseMenuPayload) error {
	exists, err := s.repo.ExistsCourseMenu(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The course menu with this id does not exist!")
	}
	return s.repo.UpdateCourseMenu(id, payload)
}

func (s *CourseMenuService) GetAllCoursesByMenuID(menuID string) ([]models.Course, error) {
	return s.repo.FindAllCoursesByMenuID(menuID)
}

// CreateCourse requires the parent menu to exist so a bad reference
// fails with a field-scoped error instead of a storage-level FK fault.
func (s *CourseMenuService) CreateCourse(payload validation.CoursePayload) error {
	exists, err := s.repo.ExistsCourseMenu(payload.CourseMenuID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("courseMenuId", "The course menu with this id does not exist!")
	}
	return s.repo.InsertCourse(payload)
}

func (s *CourseMenuService) UpdateCourse(id string, payload validation.CourseUpdatePayload) error {
	exists, err := s.repo.ExistsCourse(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The course with this id does not exist!")
	}
	return s.repo.UpdateCourse(id, payload)
}

func (s *CourseMenuService) DeleteCourse(id string) error {
	exists, err := s.repo.ExistsCourse(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New("id", "The course with this id does not exist!")
	}
	return s.repo.DeleteCourseByID(id)
}
