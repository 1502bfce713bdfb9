package service

import (
	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
)

// CategoryStore is the persistence surface for category management.
type CategoryStore interface {
	ListCategories() ([]models.Category, error)
	FindCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(category *models.Category) error
	CountRestaurantsInCategory(categoryID uint) (int64, error)
}

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoriesResult is the payload for the category listing
type CategoriesResult struct {
	Categories []models.Category `json:"categories"`
	Category   *models.Category  `json:"category,omitempty"`
}

// GetCategories lists all categories and optionally resolves one of them.
func (s *CategoryService) GetCategories(id uint) (*CategoriesResult, error) {
	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, err
	}

	result := &CategoriesResult{Categories: categories}
	if id != 0 {
		category, err := s.categories.FindCategoryByID(id)
		if err != nil {
			return nil, err
		}
		result.Category = category
	}
	return result, nil
}

// CreateCategory adds a new category with a unique name.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	category := &models.Category{Name: name}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames an existing category.
func (s *CategoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	category, err := s.categories.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Deletion is blocked while any
// restaurant still references it.
func (s *CategoryService) DeleteCategory(id uint) (*models.Category, error) {
	category, err := s.categories.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}

	inUse, err := s.categories.CountRestaurantsInCategory(id)
	if err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, apperr.Conflict("this category is in use")
	}

	if err := s.categories.DeleteCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}
