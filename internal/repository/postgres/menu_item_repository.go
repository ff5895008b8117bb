package postgres

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/domain"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{
		DB: db,
	}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id uint) (domain.MenuItem, error) {
	var item domain.MenuItem

	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItem{}, fmt.Errorf("menu item %w", domain.ErrNotFound)
		}
		return domain.MenuItem{}, fmt.Errorf("failed to find menu item: %w", err)
	}

	return item, nil
}

func (r *MenuItemRepository) FindAvailableByRestaurant(ctx context.Context, restaurantID uint) ([]domain.MenuItem, error) {
	var items []domain.MenuItem

	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("is_available = ?", true).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	return items, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	result := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"category":    item.Category,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("menu item %w", domain.ErrNotFound)
	}

	return nil
}

// SoftDelete flips is_available off.
func (r *MenuItemRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("menu item %w", domain.ErrNotFound)
	}

	return nil
}
