package models

import "time"

// Restaurant represents the restaurants table
type Restaurant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Tel          string    `gorm:"size:30" json:"tel"`
	Address      string    `gorm:"size:255" json:"address"`
	OpeningHours string    `gorm:"size:100" json:"opening_hours"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        string    `gorm:"size:255" json:"image"`
	ViewCounts   int       `gorm:"default:0" json:"view_counts"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	Category     Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Comments []Comment `json:"comments,omitempty"`
}

// TableName specifies the table name for Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}

// Category represents the categories table
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:50" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// Favorite represents the favorites join table, unique per (user, restaurant)
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_fav_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_fav_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for Favorite model
func (Favorite) TableName() string {
	return "favorites"
}

// Like represents the likes join table, unique per (user, restaurant)
type Like struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_like_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_like_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for Like model
func (Like) TableName() string {
	return "likes"
}

// Comment represents the comments table
type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Text         string     `gorm:"type:text;not null" json:"text"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	User         User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}
