package service

import (
	"fmt"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
)

// rootEmail identifies the seed administrator whose role cannot be changed.
const rootEmail = "root@example.com"

// AdminRestaurantStore is the persistence surface for restaurant management.
type AdminRestaurantStore interface {
	ListAllRestaurants() ([]models.Restaurant, error)
	GetRestaurantByID(id uint) (*models.Restaurant, error)
	FindRestaurantByID(id uint) (*models.Restaurant, error)
	CreateRestaurant(restaurant *models.Restaurant) error
	UpdateRestaurant(restaurant *models.Restaurant) error
	DeleteRestaurant(restaurant *models.Restaurant) error
}

// AdminUserStore is the persistence surface for user role management.
type AdminUserStore interface {
	ListUsers() ([]models.User, error)
	FindUserByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error
}

// CategoryFinder checks the referenced category exists.
type CategoryFinder interface {
	FindCategoryByID(id uint) (*models.Category, error)
}

type AdminService struct {
	restaurants AdminRestaurantStore
	users       AdminUserStore
	categories  CategoryFinder
	audit       AuditLogger
}

func NewAdminService(restaurants AdminRestaurantStore, users AdminUserStore, categories CategoryFinder, audit AuditLogger) *AdminService {
	return &AdminService{
		restaurants: restaurants,
		users:       users,
		categories:  categories,
		audit:       audit,
	}
}

// RestaurantInput carries the fields of a restaurant create or update.
type RestaurantInput struct {
	Name         string
	Tel          string
	Address      string
	OpeningHours string
	Description  string
	CategoryID   uint
	ImagePath    string
}

// GetRestaurants lists every restaurant with its category.
func (s *AdminService) GetRestaurants() ([]models.Restaurant, error) {
	return s.restaurants.ListAllRestaurants()
}

// GetRestaurant loads one restaurant for the admin detail view.
func (s *AdminService) GetRestaurant(id uint) (*models.Restaurant, error) {
	return s.restaurants.GetRestaurantByID(id)
}

// CreateRestaurant adds a restaurant under an existing category.
func (s *AdminService) CreateRestaurant(adminID uint, in RestaurantInput) (*models.Restaurant, error) {
	if in.Name == "" {
		return nil, apperr.Validation("restaurant name is required")
	}
	if in.CategoryID == 0 {
		return nil, apperr.Validation("category is required")
	}
	if _, err := s.categories.FindCategoryByID(in.CategoryID); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:         in.Name,
		Tel:          in.Tel,
		Address:      in.Address,
		OpeningHours: in.OpeningHours,
		Description:  in.Description,
		Image:        in.ImagePath,
		CategoryID:   in.CategoryID,
	}
	if err := s.restaurants.CreateRestaurant(restaurant); err != nil {
		return nil, err
	}

	_ = s.audit.CreateAuditLog(&adminID, "restaurant_created", fmt.Sprintf("restaurant %d created", restaurant.ID))

	return restaurant, nil
}

// UpdateRestaurant edits a restaurant; the image is kept unless replaced.
func (s *AdminService) UpdateRestaurant(id uint, in RestaurantInput) (*models.Restaurant, error) {
	if in.Name == "" {
		return nil, apperr.Validation("restaurant name is required")
	}
	if in.CategoryID == 0 {
		return nil, apperr.Validation("category is required")
	}

	restaurant, err := s.restaurants.FindRestaurantByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindCategoryByID(in.CategoryID); err != nil {
		return nil, err
	}

	restaurant.Name = in.Name
	restaurant.Tel = in.Tel
	restaurant.Address = in.Address
	restaurant.OpeningHours = in.OpeningHours
	restaurant.Description = in.Description
	restaurant.CategoryID = in.CategoryID
	if in.ImagePath != "" {
		restaurant.Image = in.ImagePath
	}

	if err := s.restaurants.UpdateRestaurant(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurant removes a restaurant.
func (s *AdminService) DeleteRestaurant(adminID, id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.FindRestaurantByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.restaurants.DeleteRestaurant(restaurant); err != nil {
		return nil, err
	}

	_ = s.audit.CreateAuditLog(&adminID, "restaurant_deleted", fmt.Sprintf("restaurant %d deleted", id))

	return restaurant, nil
}

// GetUsers lists every user account.
func (s *AdminService) GetUsers() ([]models.User, error) {
	return s.users.ListUsers()
}

// ToggleAdmin flips a user's admin flag. The root account is protected.
func (s *AdminService) ToggleAdmin(adminID, id uint) (*models.User, error) {
	user, err := s.users.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	if user.Email == rootEmail {
		return nil, apperr.Forbidden("prohibited to change root permission")
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}

	_ = s.audit.CreateAuditLog(&adminID, "admin_toggled", fmt.Sprintf("user %d admin set to %t", user.ID, user.IsAdmin))

	return user, nil
}
