package postgres

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/domain"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{
		DB: db,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	if err := r.DB.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

// FindByID loads a restaurant regardless of its active flag, with only the
// available part of its menu preloaded.
func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	var restaurant domain.Restaurant

	err := r.DB.WithContext(ctx).
		Preload("MenuItems", "is_available = ?", true).
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Restaurant{}, fmt.Errorf("restaurant %w", domain.ErrNotFound)
		}
		return domain.Restaurant{}, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return restaurant, nil
}

// FindAllActive lists active restaurants, optionally confined to a country.
func (r *RestaurantRepository) FindAllActive(ctx context.Context, country *domain.Country) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant

	query := r.DB.WithContext(ctx).
		Preload("MenuItems", "is_available = ?", true).
		Where("is_active = ?", true)
	if country != nil {
		query = query.Where("country = ?", *country)
	}

	if err := query.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to find restaurants: %w", err)
	}

	return restaurants, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	result := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]interface{}{
			"name":        restaurant.Name,
			"description": restaurant.Description,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restaurant %w", domain.ErrNotFound)
	}

	return nil
}

// SoftDelete flips is_active off. There is no hard delete path.
func (r *RestaurantRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate restaurant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restaurant %w", domain.ErrNotFound)
	}

	return nil
}
