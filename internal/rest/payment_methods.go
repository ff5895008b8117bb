package rest

import (
	"context"
	"net/http"
	"time"

	"foodcourt/business/access"
	"foodcourt/business/payments"
	"foodcourt/domain"
	"foodcourt/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PaymentsService interface {
	Create(ctx context.Context, actor access.Actor, pm domain.PaymentMethod) (domain.PaymentMethod, error)
	FindAll(ctx context.Context, actor access.Actor) ([]domain.PaymentMethod, error)
	FindOne(ctx context.Context, actor access.Actor, id uint) (domain.PaymentMethod, error)
	Update(ctx context.Context, actor access.Actor, id uint, upd payments.UpdateInput) (domain.PaymentMethod, error)
	SetDefault(ctx context.Context, actor access.Actor, id uint) (domain.PaymentMethod, error)
	Remove(ctx context.Context, actor access.Actor, id uint) error
}

type PaymentMethodsHandler struct {
	paymentsService PaymentsService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewPaymentMethodsHandler(paymentsService PaymentsService) *PaymentMethodsHandler {
	return &PaymentMethodsHandler{
		paymentsService: paymentsService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreatePaymentMethodRequest struct {
	Type           string `json:"type" validate:"required,oneof=CREDIT_CARD DEBIT_CARD UPI WALLET"`
	CardNumber     string `json:"card_number" validate:"required"`
	CardHolderName string `json:"card_holder_name" validate:"required"`
	ExpiryDate     string `json:"expiry_date"`
	IsDefault      bool   `json:"is_default"`
}

type UpdatePaymentMethodRequest struct {
	CardNumber     *string `json:"card_number,omitempty"`
	CardHolderName *string `json:"card_holder_name,omitempty"`
	ExpiryDate     *string `json:"expiry_date,omitempty"`
	IsDefault      *bool   `json:"is_default,omitempty"`
}

func (h *PaymentMethodsHandler) Create(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pm, err := h.paymentsService.Create(ctx, actor, domain.PaymentMethod{
		Type:           domain.PaymentMethodType(req.Type),
		CardNumber:     req.CardNumber,
		CardHolderName: req.CardHolderName,
		ExpiryDate:     req.ExpiryDate,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		logger.Error("Failed to create payment method", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"payment_method": pm,
	})
}

func (h *PaymentMethodsHandler) GetAll(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pms, err := h.paymentsService.FindAll(ctx, actor)
	if err != nil {
		logger.Error("Failed to get payment methods", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payment_methods": pms,
	})
}

func (h *PaymentMethodsHandler) GetByID(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pm, err := h.paymentsService.FindOne(ctx, actor, id)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payment_method": pm,
	})
}

func (h *PaymentMethodsHandler) Update(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method ID"})
	}

	var req UpdatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pm, err := h.paymentsService.Update(ctx, actor, id, payments.UpdateInput{
		CardNumber:     req.CardNumber,
		CardHolderName: req.CardHolderName,
		ExpiryDate:     req.ExpiryDate,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		logger.Error("Failed to update payment method", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payment_method": pm,
	})
}

func (h *PaymentMethodsHandler) SetDefault(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pm, err := h.paymentsService.SetDefault(ctx, actor, id)
	if err != nil {
		logger.Error("Failed to set default payment method", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payment_method": pm,
	})
}

func (h *PaymentMethodsHandler) Delete(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.paymentsService.Remove(ctx, actor, id); err != nil {
		logger.Error("Failed to delete payment method", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "payment method deleted",
	})
}
