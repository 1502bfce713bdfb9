package repository

import (
	"errors"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *CommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindCommentByID finds a comment by id
func (r *CommentRepository) FindCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment didn't exist")
		}
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment row
func (r *CommentRepository) DeleteComment(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}

// ListLatestComments returns the newest comments with their author and
// restaurant
func (r *CommentRepository) ListLatestComments(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Preload("Restaurant").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// ListCommentsByUser returns a user's comments with the commented restaurant,
// plus the total count
func (r *CommentRepository) ListCommentsByUser(userID uint) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := r.db.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, total, err
}
