package domain

import (
	"time"
)

// MenuItem is soft-deleted by flipping IsAvailable. Menu items soft-delete
// independently of their restaurant.
type MenuItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	Name         string  `gorm:"column:name;not null" json:"name"`
	Description  string  `gorm:"column:description;type:text" json:"description"`
	Price        float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Category     string  `gorm:"column:category" json:"category"`
	IsAvailable  bool    `gorm:"column:is_available" json:"is_available"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MenuItem) TableName() string {
	return "menu_items"
}
