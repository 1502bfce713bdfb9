package repository

import (
	"errors"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepo(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// ListRestaurants returns one page of restaurants, optionally filtered by
// category, together with the total row count
func (r *RestaurantRepository) ListRestaurants(categoryID uint, limit, offset int) ([]models.Restaurant, int64, error) {
	query := r.db.Model(&models.Restaurant{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	err := query.Preload("Category").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&restaurants).Error
	return restaurants, total, err
}

// ListAllRestaurants returns every restaurant with its category
func (r *RestaurantRepository) ListAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Preload("Category").Order("id ASC").Find(&restaurants).Error
	return restaurants, err
}

// ListLatestRestaurants returns the newest restaurants first
func (r *RestaurantRepository) ListLatestRestaurants(limit int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&restaurants).Error
	return restaurants, err
}

// GetRestaurantByID loads a restaurant with its category and comments
func (r *RestaurantRepository) GetRestaurantByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant didn't exist")
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindRestaurantByID loads a bare restaurant row
func (r *RestaurantRepository) FindRestaurantByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant didn't exist")
		}
		return nil, err
	}
	return &restaurant, nil
}

// CreateRestaurant creates a new restaurant
func (r *RestaurantRepository) CreateRestaurant(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

// UpdateRestaurant persists changes to an existing restaurant
func (r *RestaurantRepository) UpdateRestaurant(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}

// DeleteRestaurant removes a restaurant row
func (r *RestaurantRepository) DeleteRestaurant(restaurant *models.Restaurant) error {
	return r.db.Delete(restaurant).Error
}

// IncrementViewCounts bumps the view counter by one, once per detail view
func (r *RestaurantRepository) IncrementViewCounts(id uint) error {
	return r.db.Model(&models.Restaurant{}).
		Where("id = ?", id).
		UpdateColumn("view_counts", gorm.Expr("view_counts + 1")).Error
}

// FavoriteCounts returns the number of favorites per restaurant id
func (r *RestaurantRepository) FavoriteCounts() (map[uint]int64, error) {
	type row struct {
		RestaurantID uint
		Count        int64
	}
	var rows []row
	err := r.db.Model(&models.Favorite{}).
		Select("restaurant_id, COUNT(*) as count").
		Group("restaurant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.RestaurantID] = row.Count
	}
	return counts, nil
}

// CountFavorites counts favorites for a single restaurant
func (r *RestaurantRepository) CountFavorites(restaurantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}

// CountComments counts comments for a single restaurant
func (r *RestaurantRepository) CountComments(restaurantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}

// FindFavorite finds a favorite by its (user, restaurant) pair
func (r *RestaurantRepository) FindFavorite(userID, restaurantID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("favorite didn't exist")
		}
		return nil, err
	}
	return &favorite, nil
}

// CreateFavorite creates a favorite row; duplicates are rejected by the
// unique index
func (r *RestaurantRepository) CreateFavorite(favorite *models.Favorite) error {
	err := r.db.Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("you've already favorited this restaurant")
	}
	return err
}

// DeleteFavorite removes a favorite row
func (r *RestaurantRepository) DeleteFavorite(favorite *models.Favorite) error {
	return r.db.Delete(favorite).Error
}

// FindLike finds a like by its (user, restaurant) pair
func (r *RestaurantRepository) FindLike(userID, restaurantID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("like didn't exist")
		}
		return nil, err
	}
	return &like, nil
}

// CreateLike creates a like row; duplicates are rejected by the unique index
func (r *RestaurantRepository) CreateLike(like *models.Like) error {
	err := r.db.Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("you've already liked this restaurant")
	}
	return err
}

// DeleteLike removes a like row
func (r *RestaurantRepository) DeleteLike(like *models.Like) error {
	return r.db.Delete(like).Error
}
