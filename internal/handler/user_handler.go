package handler

import (
	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
	uploadDir   string
}

func NewUserHandler(userService *service.UserService, uploadDir string) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploadDir:   uploadDir,
	}
}

// GetUser returns a user's profile with their comments
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.userService.GetUser(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// PutUser renames the caller's profile, with an optional avatar upload
func (h *UserHandler) PutUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	name := c.PostForm("name")

	// The image field is optional; an absent file keeps the current avatar.
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	imagePath, err := utils.SaveUploadedImage(c, file, h.uploadDir)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	user, err := h.userService.UpdateUser(middleware.CurrentUser(c), id, name, imagePath)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// AddFavorite favorites a restaurant for the caller
func (h *UserHandler) AddFavorite(c *gin.Context) {
	restaurantID, err := parseIDParam(c, "restaurantId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	favorite, err := h.userService.AddFavorite(middleware.CurrentUser(c).ID, restaurantID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"favorite": favorite})
}

// RemoveFavorite removes the caller's favorite of a restaurant
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	restaurantID, err := parseIDParam(c, "restaurantId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	favorite, err := h.userService.RemoveFavorite(middleware.CurrentUser(c).ID, restaurantID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"favorite": favorite})
}

// AddLike likes a restaurant for the caller
func (h *UserHandler) AddLike(c *gin.Context) {
	restaurantID, err := parseIDParam(c, "restaurantId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	like, err := h.userService.AddLike(middleware.CurrentUser(c).ID, restaurantID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"like": like})
}

// RemoveLike removes the caller's like of a restaurant
func (h *UserHandler) RemoveLike(c *gin.Context) {
	restaurantID, err := parseIDParam(c, "restaurantId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	like, err := h.userService.RemoveLike(middleware.CurrentUser(c).ID, restaurantID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"like": like})
}

// GetTopUsers returns the follower leaderboard
func (h *UserHandler) GetTopUsers(c *gin.Context) {
	result, err := h.userService.GetTopUsers(middleware.CurrentUser(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"users": result})
}

// AddFollowing makes the caller follow another user
func (h *UserHandler) AddFollowing(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	followship, err := h.userService.AddFollowing(middleware.CurrentUser(c).ID, userID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"followship": followship})
}

// RemoveFollowing removes the caller's followship of another user
func (h *UserHandler) RemoveFollowing(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	followship, err := h.userService.RemoveFollowing(middleware.CurrentUser(c).ID, userID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"followship": followship})
}
