package handler

import (
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// GetCategories lists all categories; with an :id it also resolves that one
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var id uint
	if c.Param("id") != "" {
		parsed, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		id = parsed
	}

	result, err := h.categoryService.GetCategories(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// CreateCategory adds a new category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperr.Validation("category name is required"))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperr.Validation("category name is required"))
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}

// DeleteCategory removes a category that no restaurant references
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	category, err := h.categoryService.DeleteCategory(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}
