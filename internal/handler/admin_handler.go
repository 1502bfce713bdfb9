package handler

import (
	"strconv"

	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
	uploadDir    string
}

func NewAdminHandler(adminService *service.AdminService, uploadDir string) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		uploadDir:    uploadDir,
	}
}

// GetRestaurants lists every restaurant for the admin panel
func (h *AdminHandler) GetRestaurants(c *gin.Context) {
	restaurants, err := h.adminService.GetRestaurants()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurants": restaurants})
}

// GetRestaurant shows one restaurant for the admin panel
func (h *AdminHandler) GetRestaurant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	restaurant, err := h.adminService.GetRestaurant(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurant": restaurant})
}

// restaurantInput reads the multipart form of a restaurant create or update.
// Restaurants carry an optional image upload, so the body is form-encoded
// rather than JSON.
func (h *AdminHandler) restaurantInput(c *gin.Context) (service.RestaurantInput, error) {
	categoryID, _ := strconv.ParseUint(c.PostForm("category_id"), 10, 32)

	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	imagePath, err := utils.SaveUploadedImage(c, file, h.uploadDir)
	if err != nil {
		return service.RestaurantInput{}, err
	}

	return service.RestaurantInput{
		Name:         c.PostForm("name"),
		Tel:          c.PostForm("tel"),
		Address:      c.PostForm("address"),
		OpeningHours: c.PostForm("opening_hours"),
		Description:  c.PostForm("description"),
		CategoryID:   uint(categoryID),
		ImagePath:    imagePath,
	}, nil
}

// CreateRestaurant adds a restaurant
func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	in, err := h.restaurantInput(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	restaurant, err := h.adminService.CreateRestaurant(middleware.CurrentUser(c).ID, in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant edits a restaurant
func (h *AdminHandler) UpdateRestaurant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	in, err := h.restaurantInput(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	restaurant, err := h.adminService.UpdateRestaurant(id, in)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant
func (h *AdminHandler) DeleteRestaurant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	restaurant, err := h.adminService.DeleteRestaurant(middleware.CurrentUser(c).ID, id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"restaurant": restaurant})
}

// GetUsers lists every user account
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.GetUsers()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"users": users})
}

// ToggleAdmin flips a user's admin flag
func (h *AdminHandler) ToggleAdmin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	user, err := h.adminService.ToggleAdmin(middleware.CurrentUser(c).ID, id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}
