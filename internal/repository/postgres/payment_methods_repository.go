package postgres

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/domain"

	"gorm.io/gorm"
)

type PaymentMethodsRepository struct {
	DB *gorm.DB
}

func NewPaymentMethodsRepository(db *gorm.DB) *PaymentMethodsRepository {
	return &PaymentMethodsRepository{
		DB: db,
	}
}

func (r *PaymentMethodsRepository) Create(ctx context.Context, pm *domain.PaymentMethod) error {
	if err := r.DB.WithContext(ctx).Create(pm).Error; err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	return nil
}

func (r *PaymentMethodsRepository) FindByID(ctx context.Context, id uint) (domain.PaymentMethod, error) {
	var pm domain.PaymentMethod

	err := r.DB.WithContext(ctx).First(&pm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentMethod{}, fmt.Errorf("payment method %w", domain.ErrNotFound)
		}
		return domain.PaymentMethod{}, fmt.Errorf("failed to find payment method: %w", err)
	}

	return pm, nil
}

func (r *PaymentMethodsRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.PaymentMethod, error) {
	var pms []domain.PaymentMethod

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payment methods: %w", err)
	}

	return pms, nil
}

func (r *PaymentMethodsRepository) Update(ctx context.Context, pm *domain.PaymentMethod) error {
	result := r.DB.WithContext(ctx).Model(&domain.PaymentMethod{}).
		Where("id = ?", pm.ID).
		Updates(map[string]interface{}{
			"card_number":      pm.CardNumber,
			"card_holder_name": pm.CardHolderName,
			"expiry_date":      pm.ExpiryDate,
			"is_default":       pm.IsDefault,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment method: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment method %w", domain.ErrNotFound)
	}

	return nil
}

// UnsetDefaults clears is_default on every method the user owns. Callers
// run this before flagging a new default; the two writes are not atomic.
func (r *PaymentMethodsRepository) UnsetDefaults(ctx context.Context, userID uint) error {
	err := r.DB.WithContext(ctx).Model(&domain.PaymentMethod{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to unset default payment methods: %w", err)
	}

	return nil
}

func (r *PaymentMethodsRepository) SetDefault(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Model(&domain.PaymentMethod{}).
		Where("id = ?", id).
		Update("is_default", true)
	if result.Error != nil {
		return fmt.Errorf("failed to set default payment method: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment method %w", domain.ErrNotFound)
	}

	return nil
}

func (r *PaymentMethodsRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.PaymentMethod{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment method: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment method %w", domain.ErrNotFound)
	}

	return nil
}
