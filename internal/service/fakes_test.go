package service

import (
	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
)

type pair struct {
	a, b uint
}

// fakeStore is an in-memory stand-in for the gorm repositories. It enforces
// the same uniqueness rules the real store enforces through unique indexes.
type fakeStore struct {
	nextID      uint
	users       map[uint]*models.User
	tokens      map[uint]string
	restaurants map[uint]*models.Restaurant
	categories  map[uint]*models.Category
	favorites   map[pair]*models.Favorite
	likes       map[pair]*models.Like
	followships map[pair]*models.Followship
	auditLog    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:      1,
		users:       make(map[uint]*models.User),
		tokens:      make(map[uint]string),
		restaurants: make(map[uint]*models.Restaurant),
		categories:  make(map[uint]*models.Category),
		favorites:   make(map[pair]*models.Favorite),
		likes:       make(map[pair]*models.Like),
		followships: make(map[pair]*models.Followship),
	}
}

func (s *fakeStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

// ---- CredentialStore ----

func (s *fakeStore) FindUserByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user didn't exist")
}

func (s *fakeStore) FindUserByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user didn't exist")
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) FindUserByIDWithRelations(id uint) (*models.User, error) {
	user, err := s.FindUserByID(id)
	if err != nil {
		return nil, err
	}

	for key := range s.favorites {
		if key.a == id {
			user.FavoritedRestaurants = append(user.FavoritedRestaurants, models.Restaurant{ID: key.b})
		}
	}
	for key := range s.likes {
		if key.a == id {
			user.LikedRestaurants = append(user.LikedRestaurants, models.Restaurant{ID: key.b})
		}
	}
	for key := range s.followships {
		if key.b == id {
			user.Followers = append(user.Followers, models.User{ID: key.a})
		}
		if key.a == id {
			user.Followings = append(user.Followings, models.User{ID: key.b})
		}
	}
	return user, nil
}

func (s *fakeStore) CreateUser(user *models.User) error {
	if _, err := s.FindUserByEmail(user.Email); err == nil {
		return apperr.Conflict("email already exists")
	}
	user.ID = s.id()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) UpdateUser(user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return apperr.NotFound("user didn't exist")
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) ListUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

func (s *fakeStore) FindTokenByUserID(userID uint) (*models.Token, error) {
	token, ok := s.tokens[userID]
	if !ok {
		return nil, apperr.NotFound("token didn't exist")
	}
	return &models.Token{UserID: userID, Token: token}, nil
}

func (s *fakeStore) UpsertToken(userID uint, tokenString string) error {
	s.tokens[userID] = tokenString
	return nil
}

func (s *fakeStore) DeleteTokenByUserID(userID uint) (bool, error) {
	if _, ok := s.tokens[userID]; !ok {
		return false, nil
	}
	delete(s.tokens, userID)
	return true, nil
}

// ---- UserStore ----

func (s *fakeStore) FollowerCounts() (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for key := range s.followships {
		counts[key.b]++
	}
	return counts, nil
}

func (s *fakeStore) FindFollowship(followerID, followingID uint) (*models.Followship, error) {
	followship, ok := s.followships[pair{followerID, followingID}]
	if !ok {
		return nil, apperr.NotFound("followship didn't exist")
	}
	return followship, nil
}

func (s *fakeStore) CreateFollowship(followship *models.Followship) error {
	key := pair{followship.FollowerID, followship.FollowingID}
	if _, ok := s.followships[key]; ok {
		return apperr.Conflict("you've already followed this user")
	}
	followship.ID = s.id()
	s.followships[key] = followship
	return nil
}

func (s *fakeStore) DeleteFollowship(followship *models.Followship) error {
	delete(s.followships, pair{followship.FollowerID, followship.FollowingID})
	return nil
}

// ---- FavoriteLikeStore ----

func (s *fakeStore) FindRestaurantByID(id uint) (*models.Restaurant, error) {
	restaurant, ok := s.restaurants[id]
	if !ok {
		return nil, apperr.NotFound("restaurant didn't exist")
	}
	copied := *restaurant
	return &copied, nil
}

func (s *fakeStore) FindFavorite(userID, restaurantID uint) (*models.Favorite, error) {
	favorite, ok := s.favorites[pair{userID, restaurantID}]
	if !ok {
		return nil, apperr.NotFound("favorite didn't exist")
	}
	return favorite, nil
}

func (s *fakeStore) CreateFavorite(favorite *models.Favorite) error {
	key := pair{favorite.UserID, favorite.RestaurantID}
	if _, ok := s.favorites[key]; ok {
		return apperr.Conflict("you've already favorited this restaurant")
	}
	favorite.ID = s.id()
	s.favorites[key] = favorite
	return nil
}

func (s *fakeStore) DeleteFavorite(favorite *models.Favorite) error {
	delete(s.favorites, pair{favorite.UserID, favorite.RestaurantID})
	return nil
}

func (s *fakeStore) FindLike(userID, restaurantID uint) (*models.Like, error) {
	like, ok := s.likes[pair{userID, restaurantID}]
	if !ok {
		return nil, apperr.NotFound("like didn't exist")
	}
	return like, nil
}

func (s *fakeStore) CreateLike(like *models.Like) error {
	key := pair{like.UserID, like.RestaurantID}
	if _, ok := s.likes[key]; ok {
		return apperr.Conflict("you've already liked this restaurant")
	}
	like.ID = s.id()
	s.likes[key] = like
	return nil
}

func (s *fakeStore) DeleteLike(like *models.Like) error {
	delete(s.likes, pair{like.UserID, like.RestaurantID})
	return nil
}

// ---- UserCommentLister / CommentLister ----

func (s *fakeStore) ListCommentsByUser(userID uint) ([]models.Comment, int64, error) {
	return nil, 0, nil
}

func (s *fakeStore) ListLatestComments(limit int) ([]models.Comment, error) {
	return nil, nil
}

// ---- RestaurantStore ----

func (s *fakeStore) sortedRestaurants() []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, len(s.restaurants))
	for id := uint(0); id < s.nextID+100; id++ {
		if restaurant, ok := s.restaurants[id]; ok {
			restaurants = append(restaurants, *restaurant)
		}
	}
	return restaurants
}

func (s *fakeStore) ListRestaurants(categoryID uint, limit, offset int) ([]models.Restaurant, int64, error) {
	var matched []models.Restaurant
	for _, restaurant := range s.sortedRestaurants() {
		if categoryID == 0 || restaurant.CategoryID == categoryID {
			matched = append(matched, restaurant)
		}
	}
	total := int64(len(matched))
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *fakeStore) ListAllRestaurants() ([]models.Restaurant, error) {
	return s.sortedRestaurants(), nil
}

func (s *fakeStore) ListLatestRestaurants(limit int) ([]models.Restaurant, error) {
	restaurants := s.sortedRestaurants()
	if limit < len(restaurants) {
		restaurants = restaurants[:limit]
	}
	return restaurants, nil
}

func (s *fakeStore) GetRestaurantByID(id uint) (*models.Restaurant, error) {
	return s.FindRestaurantByID(id)
}

func (s *fakeStore) IncrementViewCounts(id uint) error {
	restaurant, ok := s.restaurants[id]
	if !ok {
		return apperr.NotFound("restaurant didn't exist")
	}
	restaurant.ViewCounts++
	return nil
}

func (s *fakeStore) FavoriteCounts() (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for key := range s.favorites {
		counts[key.b]++
	}
	return counts, nil
}

func (s *fakeStore) CountFavorites(restaurantID uint) (int64, error) {
	var count int64
	for key := range s.favorites {
		if key.b == restaurantID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CountComments(restaurantID uint) (int64, error) {
	return 0, nil
}

// ---- CategoryStore ----

func (s *fakeStore) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (s *fakeStore) FindCategoryByID(id uint) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, apperr.NotFound("category didn't exist")
	}
	return category, nil
}

func (s *fakeStore) CreateCategory(category *models.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return apperr.Conflict("category name already exists")
		}
	}
	category.ID = s.id()
	s.categories[category.ID] = category
	return nil
}

func (s *fakeStore) UpdateCategory(category *models.Category) error {
	s.categories[category.ID] = category
	return nil
}

func (s *fakeStore) DeleteCategory(category *models.Category) error {
	delete(s.categories, category.ID)
	return nil
}

func (s *fakeStore) CountRestaurantsInCategory(categoryID uint) (int64, error) {
	var count int64
	for _, restaurant := range s.restaurants {
		if restaurant.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ---- AuditLogger ----

func (s *fakeStore) CreateAuditLog(userID *uint, action string, details string) error {
	s.auditLog = append(s.auditLog, action)
	return nil
}
