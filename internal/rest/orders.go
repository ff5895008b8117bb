package rest

import (
	"context"
	"net/http"
	"time"

	"foodcourt/business/access"
	"foodcourt/business/orders"
	"foodcourt/domain"
	"foodcourt/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		Create(ctx context.Context, actor access.Actor, restaurantID uint, lines []orders.OrderLine, paymentMethodID *uint) (domain.Order, error)
		FindAll(ctx context.Context, actor access.Actor) ([]domain.Order, error)
		FindOne(ctx context.Context, actor access.Actor, id uint) (domain.Order, error)
		Checkout(ctx context.Context, actor access.Actor, id uint) (domain.Order, error)
		Cancel(ctx context.Context, actor access.Actor, id uint) (domain.Order, error)
		UpdateStatus(ctx context.Context, actor access.Actor, id uint, status domain.OrderStatus) (domain.Order, error)
	}

	OrderItemInput struct {
		MenuItemID uint `json:"menu_item_id" validate:"required"`
		Quantity   int  `json:"quantity" validate:"required,min=1"`
	}

	CreateOrderInput struct {
		RestaurantID    uint             `json:"restaurant_id" validate:"required"`
		Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
		PaymentMethodID *uint            `json:"payment_method_id"`
	}

	UpdateStatusInput struct {
		Status string `json:"status" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request CreateOrderInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	lines := make([]orders.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		lines = append(lines, orders.OrderLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.Create(ctx, actor, request.RestaurantID, lines, request.PaymentMethodID)
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	allOrders, err := h.ordersService.FindAll(ctx, actor)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(allOrders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.FindOne(ctx, actor, orderID)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) Checkout(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.Checkout(ctx, actor, orderID)
	if err != nil {
		logger.Error("Failed to checkout order", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) Cancel(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.Cancel(ctx, actor, orderID)
	if err != nil {
		logger.Error("Failed to cancel order", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	var request UpdateStatusInput

	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.UpdateStatus(ctx, actor, orderID, domain.OrderStatus(request.Status))
	if err != nil {
		logger.Error("Failed to update order status", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
