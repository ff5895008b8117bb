package domain

import (
	"time"
)

// Restaurant is soft-deleted by flipping IsActive, never removed.
type Restaurant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Country     Country    `gorm:"column:country;not null" json:"country"`
	IsActive    bool       `gorm:"column:is_active" json:"is_active"`
	MenuItems   []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Restaurant) TableName() string {
	return "restaurants"
}
