package service

import (
	"sort"

	"restaurant-forum-backend/internal/models"
)

const (
	topRestaurantsLimit      = 10
	topDescriptionRuneLimit  = 100
	listDescriptionRuneLimit = 50
)

// TopRestaurant is one entry of the top-restaurants leaderboard
type TopRestaurant struct {
	models.Restaurant
	FavoritedCount int64 `json:"favorited_count"`
	IsFavorited    bool  `json:"is_favorited"`
}

// TopUser is one entry of the top-users leaderboard
type TopUser struct {
	models.User
	FollowerCount int64 `json:"follower_count"`
	IsFollowed    bool  `json:"is_followed"`
}

// TopRestaurants ranks every restaurant by favorite count, view count and id,
// and returns the first ten. Restaurants without favorites enter the same
// sort with a zero count, so they backfill the tail in view-count order
// rather than being appended unsorted. The result is fully re-derived from
// the given snapshot on every call.
func TopRestaurants(restaurants []models.Restaurant, favoriteCounts map[uint]int64, viewer *AuthenticatedUser) []TopRestaurant {
	result := make([]TopRestaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		restaurant.Description = truncateDescription(restaurant.Description, topDescriptionRuneLimit)
		result = append(result, TopRestaurant{
			Restaurant:     restaurant,
			FavoritedCount: favoriteCounts[restaurant.ID],
			IsFavorited:    viewer.HasFavorited(restaurant.ID),
		})
	}

	// One comparator encodes all three keys; id ascending is the only
	// ascending key and makes fully-tied rows deterministic.
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.FavoritedCount != b.FavoritedCount {
			return a.FavoritedCount > b.FavoritedCount
		}
		if a.ViewCounts != b.ViewCounts {
			return a.ViewCounts > b.ViewCounts
		}
		return a.ID < b.ID
	})

	if len(result) > topRestaurantsLimit {
		result = result[:topRestaurantsLimit]
	}
	return result
}

// TopUsers ranks every user by follower count, id ascending on ties. No
// truncation is applied.
func TopUsers(users []models.User, followerCounts map[uint]int64, viewer *AuthenticatedUser) []TopUser {
	result := make([]TopUser, 0, len(users))
	for _, user := range users {
		result = append(result, TopUser{
			User:          user,
			FollowerCount: followerCounts[user.ID],
			IsFollowed:    viewer.IsFollowing(user.ID),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.FollowerCount != b.FollowerCount {
			return a.FollowerCount > b.FollowerCount
		}
		return a.ID < b.ID
	})

	return result
}

// truncateDescription cuts a description to at most limit runes, appending an
// ellipsis when anything was cut.
func truncateDescription(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
