package domain

import (
	"time"
)

// PaymentMethod.CardNumber is stored AES-encrypted; reads expose only a
// masked form. At most one method per user has IsDefault=true, enforced by
// unsetting the others before setting a new default (two writes, not one
// constrained update).
type PaymentMethod struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	Type           PaymentMethodType `gorm:"column:type;not null" json:"type"`
	CardNumber     string            `gorm:"column:card_number;not null" json:"card_number"`
	CardHolderName string            `gorm:"column:card_holder_name;not null" json:"card_holder_name"`
	ExpiryDate     string            `gorm:"column:expiry_date" json:"expiry_date"`
	IsDefault      bool              `gorm:"column:is_default;default:false" json:"is_default"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
