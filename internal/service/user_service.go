package service

import (
	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
)

// UserStore is the persistence surface for profiles and followships.
type UserStore interface {
	FindUserByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error
	ListUsers() ([]models.User, error)
	FollowerCounts() (map[uint]int64, error)
	FindFollowship(followerID, followingID uint) (*models.Followship, error)
	CreateFollowship(followship *models.Followship) error
	DeleteFollowship(followship *models.Followship) error
}

// FavoriteLikeStore is the persistence surface for favorite and like toggles.
type FavoriteLikeStore interface {
	FindRestaurantByID(id uint) (*models.Restaurant, error)
	FindFavorite(userID, restaurantID uint) (*models.Favorite, error)
	CreateFavorite(favorite *models.Favorite) error
	DeleteFavorite(favorite *models.Favorite) error
	FindLike(userID, restaurantID uint) (*models.Like, error)
	CreateLike(like *models.Like) error
	DeleteLike(like *models.Like) error
}

// UserCommentLister loads the comments shown on a profile page.
type UserCommentLister interface {
	ListCommentsByUser(userID uint) ([]models.Comment, int64, error)
}

type UserService struct {
	users       UserStore
	restaurants FavoriteLikeStore
	comments    UserCommentLister
}

func NewUserService(users UserStore, restaurants FavoriteLikeStore, comments UserCommentLister) *UserService {
	return &UserService{
		users:       users,
		restaurants: restaurants,
		comments:    comments,
	}
}

// ProfileResult is the payload for a user's profile page
type ProfileResult struct {
	Profile      *models.User     `json:"profile"`
	Comments     []models.Comment `json:"comments"`
	CommentCount int64            `json:"comment_count"`
}

// GetUser returns a user's profile together with their comments.
func (s *UserService) GetUser(id uint) (*ProfileResult, error) {
	user, err := s.users.FindUserByID(id)
	if err != nil {
		return nil, err
	}

	comments, count, err := s.comments.ListCommentsByUser(id)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		Profile:      user,
		Comments:     comments,
		CommentCount: count,
	}, nil
}

// UpdateUser renames a profile and optionally replaces its avatar. Only the
// owner may edit it.
func (s *UserService) UpdateUser(viewer *AuthenticatedUser, id uint, name, imagePath string) (*models.User, error) {
	if viewer == nil || viewer.ID != id {
		return nil, apperr.Forbidden("permission denied")
	}
	if name == "" {
		return nil, apperr.Validation("user name is required")
	}

	user, err := s.users.FindUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if imagePath != "" {
		user.Image = imagePath
	}

	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddFavorite marks a restaurant as the user's favorite. Favoriting twice is
// a conflict, not a no-op.
func (s *UserService) AddFavorite(userID, restaurantID uint) (*models.Favorite, error) {
	if _, err := s.restaurants.FindRestaurantByID(restaurantID); err != nil {
		return nil, err
	}

	if _, err := s.restaurants.FindFavorite(userID, restaurantID); err == nil {
		return nil, apperr.Conflict("you've already favorited this restaurant")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	favorite := &models.Favorite{UserID: userID, RestaurantID: restaurantID}
	if err := s.restaurants.CreateFavorite(favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// RemoveFavorite deletes the user's favorite of a restaurant.
func (s *UserService) RemoveFavorite(userID, restaurantID uint) (*models.Favorite, error) {
	favorite, err := s.restaurants.FindFavorite(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.restaurants.DeleteFavorite(favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// AddLike marks a restaurant as liked by the user.
func (s *UserService) AddLike(userID, restaurantID uint) (*models.Like, error) {
	if _, err := s.restaurants.FindRestaurantByID(restaurantID); err != nil {
		return nil, err
	}

	if _, err := s.restaurants.FindLike(userID, restaurantID); err == nil {
		return nil, apperr.Conflict("you've already liked this restaurant")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	like := &models.Like{UserID: userID, RestaurantID: restaurantID}
	if err := s.restaurants.CreateLike(like); err != nil {
		return nil, err
	}
	return like, nil
}

// RemoveLike deletes the user's like of a restaurant.
func (s *UserService) RemoveLike(userID, restaurantID uint) (*models.Like, error) {
	like, err := s.restaurants.FindLike(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.restaurants.DeleteLike(like); err != nil {
		return nil, err
	}
	return like, nil
}

// GetTopUsers recomputes the follower leaderboard over all users.
func (s *UserService) GetTopUsers(viewer *AuthenticatedUser) ([]TopUser, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, err
	}

	followerCounts, err := s.users.FollowerCounts()
	if err != nil {
		return nil, err
	}

	return TopUsers(users, followerCounts, viewer), nil
}

// AddFollowing makes the viewer follow another user. Following yourself is
// forbidden; following twice is a conflict.
func (s *UserService) AddFollowing(followerID, followingID uint) (*models.Followship, error) {
	if followerID == followingID {
		return nil, apperr.Conflict("you can't follow yourself")
	}

	if _, err := s.users.FindUserByID(followingID); err != nil {
		return nil, err
	}

	if _, err := s.users.FindFollowship(followerID, followingID); err == nil {
		return nil, apperr.Conflict("you've already followed this user")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	followship := &models.Followship{FollowerID: followerID, FollowingID: followingID}
	if err := s.users.CreateFollowship(followship); err != nil {
		return nil, err
	}
	return followship, nil
}

// RemoveFollowing deletes the viewer's followship of another user.
func (s *UserService) RemoveFollowing(followerID, followingID uint) (*models.Followship, error) {
	followship, err := s.users.FindFollowship(followerID, followingID)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteFollowship(followship); err != nil {
		return nil, err
	}
	return followship, nil
}
