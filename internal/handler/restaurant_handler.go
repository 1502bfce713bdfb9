package handler

import (
	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// GetRestaurants returns one page of restaurants, filterable by category
func (h *RestaurantHandler) GetRestaurants(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	categoryID := parseUintQuery(c, "categoryId")
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 0)

	result, err := h.restaurantService.GetRestaurants(viewer, categoryID, page, limit)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetRestaurant returns one restaurant's detail and bumps its view counter
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.restaurantService.GetRestaurant(middleware.CurrentUser(c), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetDashboard returns a restaurant with its comment and favorite totals
func (h *RestaurantHandler) GetDashboard(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.restaurantService.GetDashboard(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetFeeds returns the newest restaurants and comments
func (h *RestaurantHandler) GetFeeds(c *gin.Context) {
	result, err := h.restaurantService.GetFeeds()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetTopRestaurants returns the recomputed top-ten leaderboard
func (h *RestaurantHandler) GetTopRestaurants(c *gin.Context) {
	result, err := h.restaurantService.GetTopRestaurants(middleware.CurrentUser(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurants": result})
}
