package handler

import (
	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type CreateCommentRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Text         string `json:"text" binding:"required"`
}

// CreateComment posts a comment on a restaurant
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperr.Validation("invalid request body"))
		return
	}

	comment, err := h.commentService.CreateComment(middleware.CurrentUser(c).ID, req.RestaurantID, req.Text)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"comment": comment})
}

// DeleteComment removes a comment (admin only, gated in routes)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	comment, err := h.commentService.DeleteComment(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"comment": comment})
}
