package service

import (
	"strings"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"
)

// CommentStore is the persistence surface for comments.
type CommentStore interface {
	CreateComment(comment *models.Comment) error
	FindCommentByID(id uint) (*models.Comment, error)
	DeleteComment(comment *models.Comment) error
}

// RestaurantFinder checks the commented restaurant exists.
type RestaurantFinder interface {
	FindRestaurantByID(id uint) (*models.Restaurant, error)
}

type CommentService struct {
	comments    CommentStore
	restaurants RestaurantFinder
}

func NewCommentService(comments CommentStore, restaurants RestaurantFinder) *CommentService {
	return &CommentService{
		comments:    comments,
		restaurants: restaurants,
	}
}

// CreateComment posts a non-empty comment on an existing restaurant.
func (s *CommentService) CreateComment(userID, restaurantID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("comment text is required")
	}

	if _, err := s.restaurants.FindRestaurantByID(restaurantID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:         text,
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment.
func (s *CommentService) DeleteComment(id uint) (*models.Comment, error) {
	comment, err := s.comments.FindCommentByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.comments.DeleteComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
