package repository

import (
	"errors"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByEmail finds a user by exact email match
func (r *UserRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user didn't exist")
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID finds a user by id without loading relations
func (r *UserRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user didn't exist")
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByIDWithRelations loads a user together with the favorited and
// liked restaurant sets and the follower/following sets. The token
// authenticator attaches these once per request so handlers can do O(1)
// membership checks.
func (r *UserRepository) FindUserByIDWithRelations(id uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("FavoritedRestaurants").
		Preload("LikedRestaurants").
		Preload("Followers").
		Preload("Followings").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user didn't exist")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("email already exists")
	}
	return err
}

// UpdateUser persists changes to an existing user
func (r *UserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// ListUsers returns all users
func (r *UserRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// FollowerCounts returns the number of followers per user id
func (r *UserRepository) FollowerCounts() (map[uint]int64, error) {
	type row struct {
		FollowingID uint
		Count       int64
	}
	var rows []row
	err := r.db.Model(&models.Followship{}).
		Select("following_id, COUNT(*) as count").
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.FollowingID] = row.Count
	}
	return counts, nil
}

// FindFollowship finds a followship by its (follower, following) pair
func (r *UserRepository) FindFollowship(followerID, followingID uint) (*models.Followship, error) {
	var followship models.Followship
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&followship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("followship didn't exist")
		}
		return nil, err
	}
	return &followship, nil
}

// CreateFollowship creates a followship row; the unique index makes
// concurrent duplicate attempts fail deterministically
func (r *UserRepository) CreateFollowship(followship *models.Followship) error {
	err := r.db.Create(followship).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("you've already followed this user")
	}
	return err
}

// DeleteFollowship removes a followship row
func (r *UserRepository) DeleteFollowship(followship *models.Followship) error {
	return r.db.Delete(followship).Error
}

// FindTokenByUserID returns the single live token row for a user
func (r *UserRepository) FindTokenByUserID(userID uint) (*models.Token, error) {
	var token models.Token
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("token didn't exist")
		}
		return nil, err
	}
	return &token, nil
}

// UpsertToken creates the token row for a user or replaces the stored bearer
// string, which immediately revokes the previous one
func (r *UserRepository) UpsertToken(userID uint, tokenString string) error {
	token := models.Token{UserID: userID, Token: tokenString}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
	}).Create(&token).Error
}

// DeleteTokenByUserID destroys a user's token row and reports whether one
// existed
func (r *UserRepository) DeleteTokenByUserID(userID uint) (bool, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Token{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
