package postgres

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// CreateWithItems persists the order and all of its items in one
// transaction. A failure on any item aborts the whole order.
func (r *OrdersRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("order %w", domain.ErrNotFound)
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindAllByCountry(ctx context.Context, country domain.Country) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").
		Where("country = ?", country).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus changes only the status column. Totals and item prices are
// frozen at creation and never touched again.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %w", domain.ErrNotFound)
	}

	return nil
}
