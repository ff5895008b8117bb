package domain

import (
	"time"
)

type (
	// Order owns its OrderItems; they are created together in one transaction.
	// Country is copied from the restaurant at creation time and never
	// re-derived, so later restaurant edits do not move existing orders
	// between scopes. TotalAmount is derived once at creation and frozen.
	Order struct {
		ID              uint        `gorm:"primaryKey" json:"id"`
		Number          string      `gorm:"column:number;unique;not null" json:"number"`
		UserID          uint        `gorm:"column:user_id;not null;index" json:"user_id"`
		RestaurantID    uint        `gorm:"column:restaurant_id;not null" json:"restaurant_id"`
		Status          OrderStatus `gorm:"column:status;not null;default:PENDING" json:"status"`
		TotalAmount     float64     `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
		PaymentMethodID *uint       `gorm:"column:payment_method_id" json:"payment_method_id"`
		Country         Country     `gorm:"column:country;not null;index" json:"country"`
		Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
		CreatedAt       time.Time   `json:"created_at"`
		UpdatedAt       time.Time   `json:"updated_at"`
	}

	// OrderItem.Price is a snapshot of the menu price at order time. Later
	// menu price changes must not affect it.
	OrderItem struct {
		ID         uint    `gorm:"primaryKey" json:"id"`
		OrderID    uint    `gorm:"column:order_id;not null;index" json:"order_id"`
		MenuItemID uint    `gorm:"column:menu_item_id;not null" json:"menu_item_id"`
		Quantity   int     `gorm:"column:quantity;not null" json:"quantity"`
		Price      float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	}
)

func (Order) TableName() string {
	return "orders"
}

func (OrderItem) TableName() string {
	return "order_items"
}
