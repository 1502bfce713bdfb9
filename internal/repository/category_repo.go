package repository

import (
	"errors"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListCategories returns all categories
func (r *CategoryRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

// FindCategoryByID finds a category by id
func (r *CategoryRepository) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category didn't exist")
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a category; duplicate names are rejected by the
// unique index
func (r *CategoryRepository) CreateCategory(category *models.Category) error {
	err := r.db.Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("category name already exists")
	}
	return err
}

// UpdateCategory persists changes to an existing category
func (r *CategoryRepository) UpdateCategory(category *models.Category) error {
	err := r.db.Save(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("category name already exists")
	}
	return err
}

// DeleteCategory removes a category row
func (r *CategoryRepository) DeleteCategory(category *models.Category) error {
	return r.db.Delete(category).Error
}

// CountRestaurantsInCategory counts how many restaurants still reference a
// category; deletion is blocked while any do
func (r *CategoryRepository) CountRestaurantsInCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Restaurant{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
