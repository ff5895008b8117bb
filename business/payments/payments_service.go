package payments

import (
	"context"
	"fmt"
	"strings"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

// PaymentMethodsRepository contract interface
type PaymentMethodsRepository interface {
	Create(ctx context.Context, pm *domain.PaymentMethod) error
	FindByID(ctx context.Context, id uint) (domain.PaymentMethod, error)
	FindAllByUser(ctx context.Context, userID uint) ([]domain.PaymentMethod, error)
	Update(ctx context.Context, pm *domain.PaymentMethod) error
	UnsetDefaults(ctx context.Context, userID uint) error
	SetDefault(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// PaymentsService stores card numbers AES-encrypted and only ever returns
// them masked to the last four digits.
type PaymentsService struct {
	paymentRepo PaymentMethodsRepository
	cardKey     string
}

func NewPaymentsService(paymentRepo PaymentMethodsRepository, cardKey string) *PaymentsService {
	return &PaymentsService{
		paymentRepo: paymentRepo,
		cardKey:     cardKey,
	}
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	CardNumber     *string
	CardHolderName *string
	ExpiryDate     *string
	IsDefault      *bool
}

// Create stores a payment method for the actor. Flagging it default unsets
// the actor's other defaults first; the unset and the insert are two
// separate writes, so two concurrent creates can race past each other.
func (s *PaymentsService) Create(ctx context.Context, actor access.Actor, pm domain.PaymentMethod) (domain.PaymentMethod, error) {
	if !pm.Type.Valid() {
		return domain.PaymentMethod{}, fmt.Errorf("%w: invalid payment method type", domain.ErrBadRequest)
	}

	digits := strings.ReplaceAll(pm.CardNumber, " ", "")
	if len(digits) < 4 {
		return domain.PaymentMethod{}, fmt.Errorf("%w: invalid card number", domain.ErrBadRequest)
	}

	if pm.IsDefault {
		if err := s.paymentRepo.UnsetDefaults(ctx, actor.UserID); err != nil {
			return domain.PaymentMethod{}, err
		}
	}

	encrypted, err := s.encryptCard(digits)
	if err != nil {
		logger.Error("Failed to encrypt card number", err)
		return domain.PaymentMethod{}, err
	}

	pm.UserID = actor.UserID
	pm.CardNumber = encrypted

	if err := s.paymentRepo.Create(ctx, &pm); err != nil {
		logger.Error("Failed to create payment method", err)
		return domain.PaymentMethod{}, err
	}

	pm.CardNumber = maskCard(digits)
	return pm, nil
}

func (s *PaymentsService) FindAll(ctx context.Context, actor access.Actor) ([]domain.PaymentMethod, error) {
	pms, err := s.paymentRepo.FindAllByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	for i := range pms {
		pms[i].CardNumber = s.maskStored(pms[i].CardNumber)
	}

	return pms, nil
}

func (s *PaymentsService) FindOne(ctx context.Context, actor access.Actor, id uint) (domain.PaymentMethod, error) {
	pm, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	if !access.CanViewPaymentMethod(actor, pm) {
		return domain.PaymentMethod{}, fmt.Errorf("%w: you can only view your own payment methods", domain.ErrForbidden)
	}

	pm.CardNumber = s.maskStored(pm.CardNumber)
	return pm, nil
}

// Update is an admin-only operation. Setting the default flag unsets the
// owner's other defaults first.
func (s *PaymentsService) Update(ctx context.Context, actor access.Actor, id uint, upd UpdateInput) (domain.PaymentMethod, error) {
	pm, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	if !actor.IsAdmin() {
		return domain.PaymentMethod{}, fmt.Errorf("%w: only admins can update payment methods", domain.ErrForbidden)
	}

	if upd.CardNumber != nil {
		digits := strings.ReplaceAll(*upd.CardNumber, " ", "")
		if len(digits) < 4 {
			return domain.PaymentMethod{}, fmt.Errorf("%w: invalid card number", domain.ErrBadRequest)
		}
		encrypted, err := s.encryptCard(digits)
		if err != nil {
			logger.Error("Failed to encrypt card number", err)
			return domain.PaymentMethod{}, err
		}
		pm.CardNumber = encrypted
	}
	if upd.CardHolderName != nil {
		pm.CardHolderName = *upd.CardHolderName
	}
	if upd.ExpiryDate != nil {
		pm.ExpiryDate = *upd.ExpiryDate
	}
	if upd.IsDefault != nil {
		if *upd.IsDefault {
			if err := s.paymentRepo.UnsetDefaults(ctx, pm.UserID); err != nil {
				return domain.PaymentMethod{}, err
			}
		}
		pm.IsDefault = *upd.IsDefault
	}

	if err := s.paymentRepo.Update(ctx, &pm); err != nil {
		logger.Error("Failed to update payment method", err)
		return domain.PaymentMethod{}, err
	}

	pm.CardNumber = s.maskStored(pm.CardNumber)
	return pm, nil
}

// SetDefault is owner-only; admins set defaults only on their own methods.
// Unset-all and set-one are two separate writes, not one atomic statement.
func (s *PaymentsService) SetDefault(ctx context.Context, actor access.Actor, id uint) (domain.PaymentMethod, error) {
	pm, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	if pm.UserID != actor.UserID {
		return domain.PaymentMethod{}, fmt.Errorf("%w: you can only set your own payment methods as default", domain.ErrForbidden)
	}

	if err := s.paymentRepo.UnsetDefaults(ctx, actor.UserID); err != nil {
		return domain.PaymentMethod{}, err
	}

	if err := s.paymentRepo.SetDefault(ctx, id); err != nil {
		return domain.PaymentMethod{}, err
	}

	pm.IsDefault = true
	pm.CardNumber = s.maskStored(pm.CardNumber)
	return pm, nil
}

func (s *PaymentsService) Remove(ctx context.Context, actor access.Actor, id uint) error {
	if _, err := s.paymentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins can delete payment methods", domain.ErrForbidden)
	}

	return s.paymentRepo.Delete(ctx, id)
}

func (s *PaymentsService) encryptCard(digits string) (string, error) {
	encrypted, err := goshortcute.AESCBCEncrypt([]byte(digits), []byte(s.cardKey))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt card number: %w", err)
	}

	return goshortcute.StringtoBase64Encode(encrypted), nil
}

// maskStored decrypts a stored card number and masks every digit but the
// last four. A value that fails to decrypt is fully masked rather than
// surfaced.
func (s *PaymentsService) maskStored(stored string) string {
	decoded := goshortcute.StringtoBase64Decode(stored)
	digits, err := goshortcute.AESCBCDecrypt([]byte(decoded), []byte(s.cardKey))
	if err != nil {
		return "****"
	}

	return maskCard(digits)
}

func maskCard(digits string) string {
	if len(digits) < 4 {
		return "****"
	}

	return "**** **** **** " + digits[len(digits)-4:]
}
