package models

import "time"

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:50" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:100" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	Image        string    `gorm:"size:255" json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	FavoritedRestaurants []Restaurant `gorm:"many2many:favorites;" json:"favorited_restaurants,omitempty"`
	LikedRestaurants     []Restaurant `gorm:"many2many:likes;" json:"liked_restaurants,omitempty"`
	Followers            []User       `gorm:"many2many:followships;foreignKey:ID;joinForeignKey:FollowingID;References:ID;joinReferences:FollowerID" json:"followers,omitempty"`
	Followings           []User       `gorm:"many2many:followships;foreignKey:ID;joinForeignKey:FollowerID;References:ID;joinReferences:FollowingID" json:"followings,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// Token represents the tokens table. At most one live row exists per user:
// signing in again replaces the row, which revokes the previous bearer string.
type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Token     string    `gorm:"not null;size:512" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Token model
func (Token) TableName() string {
	return "tokens"
}

// Followship represents the followships join table (follower -> following)
type Followship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Followship model
func (Followship) TableName() string {
	return "followships"
}
