package service

import (
	"strings"
	"testing"

	"restaurant-forum-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantIDs(result []TopRestaurant) []uint {
	ids := make([]uint, len(result))
	for i, r := range result {
		ids[i] = r.ID
	}
	return ids
}

func TestTopRestaurantsOrdersByFavoritesThenViewsThenID(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: 1, ViewCounts: 5},
		{ID: 2, ViewCounts: 50},
		{ID: 3, ViewCounts: 5},
		{ID: 4, ViewCounts: 500},
	}
	counts := map[uint]int64{1: 2, 3: 2, 4: 1}

	result := TopRestaurants(restaurants, counts, nil)

	// 1 and 3 tie on favorites and views, so ascending id breaks the tie;
	// 2 has no favorites and ranks last despite the highest view count
	// among the zero-favorite rows.
	assert.Equal(t, []uint{1, 3, 4, 2}, restaurantIDs(result))
}

func TestTopRestaurantsFavoritesBeatViews(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: 5, ViewCounts: 100},
		{ID: 7, ViewCounts: 200},
	}
	counts := map[uint]int64{5: 1}

	result := TopRestaurants(restaurants, counts, nil)

	require.Len(t, result, 2)
	assert.Equal(t, uint(5), result[0].ID)
	assert.Equal(t, uint(7), result[1].ID)
}

func TestTopRestaurantsBackfillMergesZeroFavoriteRows(t *testing.T) {
	var restaurants []models.Restaurant
	// 3 favorited restaurants and 20 without any favorites
	for id := uint(1); id <= 23; id++ {
		restaurants = append(restaurants, models.Restaurant{ID: id, ViewCounts: int(100 - id)})
	}
	counts := map[uint]int64{10: 3, 15: 2, 20: 1}

	result := TopRestaurants(restaurants, counts, nil)

	require.Len(t, result, 10)
	assert.Equal(t, []uint{10, 15, 20}, restaurantIDs(result[:3]))

	// The remaining 7 slots are zero-favorite rows in view-count order.
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7}, restaurantIDs(result[3:]))
	for _, r := range result[3:] {
		assert.Zero(t, r.FavoritedCount)
	}
}

func TestTopRestaurantsDeterministic(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: 3, ViewCounts: 7},
		{ID: 1, ViewCounts: 7},
		{ID: 2, ViewCounts: 7},
	}
	counts := map[uint]int64{}

	first := TopRestaurants(restaurants, counts, nil)
	second := TopRestaurants(restaurants, counts, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, []uint{1, 2, 3}, restaurantIDs(first))
}

func TestTopRestaurantsTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	short := strings.Repeat("b", 100)
	restaurants := []models.Restaurant{
		{ID: 1, Description: long},
		{ID: 2, Description: short},
	}

	result := TopRestaurants(restaurants, nil, nil)

	require.Len(t, result, 2)
	assert.Equal(t, strings.Repeat("a", 100)+"...", result[0].Description)
	assert.Equal(t, short, result[1].Description)
}

func TestTopRestaurantsViewerFlags(t *testing.T) {
	restaurants := []models.Restaurant{{ID: 1}, {ID: 2}}
	viewer := &AuthenticatedUser{
		ID:                     9,
		FavoritedRestaurantIDs: map[uint]bool{2: true},
	}

	result := TopRestaurants(restaurants, nil, viewer)

	require.Len(t, result, 2)
	for _, r := range result {
		assert.Equal(t, r.ID == 2, r.IsFavorited)
	}

	// Anonymous viewers get no favorite flags at all.
	for _, r := range TopRestaurants(restaurants, nil, nil) {
		assert.False(t, r.IsFavorited)
	}
}

func TestTopUsersOrdersByFollowersThenID(t *testing.T) {
	users := []models.User{
		{ID: 4}, {ID: 1}, {ID: 2}, {ID: 3},
	}
	counts := map[uint]int64{2: 5, 3: 5, 4: 1}
	viewer := &AuthenticatedUser{ID: 1, FollowingIDs: map[uint]bool{3: true}}

	result := TopUsers(users, counts, viewer)

	require.Len(t, result, 4)
	ids := make([]uint, len(result))
	for i, u := range result {
		ids[i] = u.ID
	}
	assert.Equal(t, []uint{2, 3, 4, 1}, ids)

	assert.False(t, result[0].IsFollowed)
	assert.True(t, result[1].IsFollowed)
}
