package domain

import (
	"time"
)

type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Email     string  `gorm:"column:email;unique;not null" json:"email"`
	Password  string  `gorm:"column:password;not null" json:"password,omitempty"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	Role      Role    `gorm:"column:role;not null;default:MEMBER" json:"role"`
	Country   Country `gorm:"column:country;not null" json:"country"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
