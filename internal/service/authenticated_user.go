package service

import "restaurant-forum-backend/internal/models"

// AuthenticatedUser is the immutable per-request user context shared by the
// cookie and bearer-token flows. The relation id sets are loaded once at
// authentication time so handlers can answer membership questions without
// further queries. A nil *AuthenticatedUser means the request is anonymous;
// all membership methods are nil-safe.
type AuthenticatedUser struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Image   string `json:"image"`

	FavoritedRestaurantIDs map[uint]bool `json:"-"`
	LikedRestaurantIDs     map[uint]bool `json:"-"`
	FollowerIDs            map[uint]bool `json:"-"`
	FollowingIDs           map[uint]bool `json:"-"`
}

// NewAuthenticatedUser builds the user context from a user loaded with its
// relation sets. The password hash is not carried over.
func NewAuthenticatedUser(user *models.User) *AuthenticatedUser {
	au := &AuthenticatedUser{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Image:   user.Image,

		FavoritedRestaurantIDs: make(map[uint]bool, len(user.FavoritedRestaurants)),
		LikedRestaurantIDs:     make(map[uint]bool, len(user.LikedRestaurants)),
		FollowerIDs:            make(map[uint]bool, len(user.Followers)),
		FollowingIDs:           make(map[uint]bool, len(user.Followings)),
	}

	for _, r := range user.FavoritedRestaurants {
		au.FavoritedRestaurantIDs[r.ID] = true
	}
	for _, r := range user.LikedRestaurants {
		au.LikedRestaurantIDs[r.ID] = true
	}
	for _, u := range user.Followers {
		au.FollowerIDs[u.ID] = true
	}
	for _, u := range user.Followings {
		au.FollowingIDs[u.ID] = true
	}

	return au
}

// HasFavorited reports whether the user has favorited the restaurant
func (u *AuthenticatedUser) HasFavorited(restaurantID uint) bool {
	return u != nil && u.FavoritedRestaurantIDs[restaurantID]
}

// HasLiked reports whether the user has liked the restaurant
func (u *AuthenticatedUser) HasLiked(restaurantID uint) bool {
	return u != nil && u.LikedRestaurantIDs[restaurantID]
}

// IsFollowing reports whether the user follows the given user
func (u *AuthenticatedUser) IsFollowing(userID uint) bool {
	return u != nil && u.FollowingIDs[userID]
}
