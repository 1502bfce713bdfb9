package service

import (
	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/utils"
)

const defaultRestaurantPageLimit = 9

// RestaurantStore is the persistence surface for restaurant browsing.
type RestaurantStore interface {
	ListRestaurants(categoryID uint, limit, offset int) ([]models.Restaurant, int64, error)
	ListAllRestaurants() ([]models.Restaurant, error)
	ListLatestRestaurants(limit int) ([]models.Restaurant, error)
	GetRestaurantByID(id uint) (*models.Restaurant, error)
	FindRestaurantByID(id uint) (*models.Restaurant, error)
	IncrementViewCounts(id uint) error
	FavoriteCounts() (map[uint]int64, error)
	CountFavorites(restaurantID uint) (int64, error)
	CountComments(restaurantID uint) (int64, error)
}

// CategoryLister provides the category list shown next to restaurant pages.
type CategoryLister interface {
	ListCategories() ([]models.Category, error)
}

// CommentLister provides the newest comments for the feeds page.
type CommentLister interface {
	ListLatestComments(limit int) ([]models.Comment, error)
}

type RestaurantService struct {
	restaurants RestaurantStore
	categories  CategoryLister
	comments    CommentLister
}

func NewRestaurantService(restaurants RestaurantStore, categories CategoryLister, comments CommentLister) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		categories:  categories,
		comments:    comments,
	}
}

// RestaurantListItem is one restaurant row in a paginated listing
type RestaurantListItem struct {
	models.Restaurant
	IsFavorited bool `json:"is_favorited"`
	IsLiked     bool `json:"is_liked"`
}

// RestaurantListResult is the payload for the restaurant listing page
type RestaurantListResult struct {
	Restaurants []RestaurantListItem `json:"restaurants"`
	Categories  []models.Category    `json:"categories"`
	CategoryID  uint                 `json:"category_id"`
	Pagination  utils.Pagination     `json:"pagination"`
}

// GetRestaurants returns one page of restaurants with a short description
// preview and the viewer's favorite/like flags.
func (s *RestaurantService) GetRestaurants(viewer *AuthenticatedUser, categoryID uint, page, limit int) (*RestaurantListResult, error) {
	if limit <= 0 {
		limit = defaultRestaurantPageLimit
	}
	if page <= 0 {
		page = 1
	}
	offset := utils.GetOffset(limit, page)

	restaurants, total, err := s.restaurants.ListRestaurants(categoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, err
	}

	items := make([]RestaurantListItem, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if runes := []rune(restaurant.Description); len(runes) > listDescriptionRuneLimit {
			restaurant.Description = string(runes[:listDescriptionRuneLimit])
		}
		items = append(items, RestaurantListItem{
			Restaurant:  restaurant,
			IsFavorited: viewer.HasFavorited(restaurant.ID),
			IsLiked:     viewer.HasLiked(restaurant.ID),
		})
	}

	return &RestaurantListResult{
		Restaurants: items,
		Categories:  categories,
		CategoryID:  categoryID,
		Pagination:  utils.GetPagination(limit, page, total),
	}, nil
}

// RestaurantDetail is the payload for the restaurant detail page
type RestaurantDetail struct {
	Restaurant  *models.Restaurant `json:"restaurant"`
	IsFavorited bool               `json:"is_favorited"`
	IsLiked     bool               `json:"is_liked"`
}

// GetRestaurant loads one restaurant with its comments and bumps its view
// counter, exactly once per call.
func (s *RestaurantService) GetRestaurant(viewer *AuthenticatedUser, id uint) (*RestaurantDetail, error) {
	restaurant, err := s.restaurants.GetRestaurantByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.restaurants.IncrementViewCounts(id); err != nil {
		return nil, err
	}
	restaurant.ViewCounts++

	return &RestaurantDetail{
		Restaurant:  restaurant,
		IsFavorited: viewer.HasFavorited(restaurant.ID),
		IsLiked:     viewer.HasLiked(restaurant.ID),
	}, nil
}

// DashboardResult is the payload for a restaurant's dashboard
type DashboardResult struct {
	Restaurant     *models.Restaurant `json:"restaurant"`
	CommentCounts  int64              `json:"comment_counts"`
	FavoriteCounts int64              `json:"favorite_counts"`
}

// GetDashboard returns a restaurant with its comment and favorite totals.
func (s *RestaurantService) GetDashboard(id uint) (*DashboardResult, error) {
	restaurant, err := s.restaurants.GetRestaurantByID(id)
	if err != nil {
		return nil, err
	}

	commentCounts, err := s.restaurants.CountComments(id)
	if err != nil {
		return nil, err
	}

	favoriteCounts, err := s.restaurants.CountFavorites(id)
	if err != nil {
		return nil, err
	}

	return &DashboardResult{
		Restaurant:     restaurant,
		CommentCounts:  commentCounts,
		FavoriteCounts: favoriteCounts,
	}, nil
}

// FeedsResult is the payload for the feeds page
type FeedsResult struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Comments    []models.Comment    `json:"comments"`
}

// GetFeeds returns the ten newest restaurants and the ten newest comments.
func (s *RestaurantService) GetFeeds() (*FeedsResult, error) {
	restaurants, err := s.restaurants.ListLatestRestaurants(10)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListLatestComments(10)
	if err != nil {
		return nil, err
	}

	return &FeedsResult{
		Restaurants: restaurants,
		Comments:    comments,
	}, nil
}

// GetTopRestaurants recomputes the top-ten leaderboard from the current
// favorite counts and view counts.
func (s *RestaurantService) GetTopRestaurants(viewer *AuthenticatedUser) ([]TopRestaurant, error) {
	restaurants, err := s.restaurants.ListAllRestaurants()
	if err != nil {
		return nil, err
	}

	favoriteCounts, err := s.restaurants.FavoriteCounts()
	if err != nil {
		return nil, err
	}

	return TopRestaurants(restaurants, favoriteCounts, viewer), nil
}
