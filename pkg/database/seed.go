package database

import (
	"foodcourt/domain"
	"foodcourt/pkg/logger"
	"foodcourt/pkg/utils"

	"gorm.io/gorm"
)

// Seed loads the demo dataset: one user per role and country, two
// restaurants per country with their menus. Idempotent on email and
// restaurant name.
func Seed(db *gorm.DB) error {
	hash, err := utils.HashPassword("Password123!")
	if err != nil {
		return err
	}

	users := []domain.User{
		{Email: "nick.fury@shield.com", Name: "Nick Fury", Role: domain.RoleAdmin, Country: domain.CountryIndia},
		{Email: "carol.danvers@shield.com", Name: "Captain Marvel", Role: domain.RoleManager, Country: domain.CountryIndia},
		{Email: "steve.rogers@shield.com", Name: "Captain America", Role: domain.RoleManager, Country: domain.CountryAmerica},
		{Email: "thanos@shield.com", Name: "Thanos", Role: domain.RoleMember, Country: domain.CountryIndia},
		{Email: "thor@shield.com", Name: "Thor", Role: domain.RoleMember, Country: domain.CountryIndia},
		{Email: "travis@shield.com", Name: "Travis", Role: domain.RoleMember, Country: domain.CountryAmerica},
	}

	for _, u := range users {
		u.Password = string(hash)
		err := db.Where(domain.User{Email: u.Email}).FirstOrCreate(&u).Error
		if err != nil {
			return err
		}
	}

	restaurants := []domain.Restaurant{
		{
			Name:        "Spice Garden",
			Description: "Authentic Indian cuisine with a modern twist",
			Country:     domain.CountryIndia,
			IsActive:    true,
			MenuItems: []domain.MenuItem{
				{Name: "Butter Chicken", Description: "Creamy tomato-based chicken curry", Price: 450, Category: "Main Course", IsAvailable: true},
				{Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Price: 280, Category: "Appetizer", IsAvailable: true},
				{Name: "Biryani", Description: "Aromatic rice with spices and meat", Price: 400, Category: "Main Course", IsAvailable: true},
				{Name: "Naan", Description: "Traditional Indian bread", Price: 80, Category: "Bread", IsAvailable: true},
			},
		},
		{
			Name:        "Curry House",
			Description: "Traditional Indian flavors",
			Country:     domain.CountryIndia,
			IsActive:    true,
			MenuItems: []domain.MenuItem{
				{Name: "Dal Makhani", Description: "Black lentils in creamy gravy", Price: 250, Category: "Main Course", IsAvailable: true},
				{Name: "Samosa", Description: "Crispy pastry with potato filling", Price: 80, Category: "Appetizer", IsAvailable: true},
				{Name: "Tandoori Chicken", Description: "Chicken marinated in yogurt and spices", Price: 380, Category: "Main Course", IsAvailable: true},
			},
		},
		{
			Name:        "Burger Palace",
			Description: "Classic American burgers and fries",
			Country:     domain.CountryAmerica,
			IsActive:    true,
			MenuItems: []domain.MenuItem{
				{Name: "Classic Burger", Description: "Beef patty with lettuce, tomato, and cheese", Price: 12.99, Category: "Burgers", IsAvailable: true},
				{Name: "Cheese Fries", Description: "Crispy fries topped with melted cheese", Price: 6.99, Category: "Sides", IsAvailable: true},
				{Name: "Milkshake", Description: "Thick and creamy vanilla milkshake", Price: 5.99, Category: "Beverages", IsAvailable: true},
			},
		},
		{
			Name:        "Pizza Paradise",
			Description: "New York style pizza",
			Country:     domain.CountryAmerica,
			IsActive:    true,
			MenuItems: []domain.MenuItem{
				{Name: "Margherita Pizza", Description: "Classic pizza with tomato and mozzarella", Price: 14.99, Category: "Pizza", IsAvailable: true},
				{Name: "Pepperoni Pizza", Description: "Pizza loaded with pepperoni", Price: 16.99, Category: "Pizza", IsAvailable: true},
			},
		},
	}

	for _, r := range restaurants {
		var count int64
		if err := db.Model(&domain.Restaurant{}).Where("name = ?", r.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}

	logger.Info("Database seeded")
	return nil
}
