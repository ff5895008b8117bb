package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	ListRestaurants(ctx context.Context, actor access.Actor) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, actor access.Actor, id uint) (domain.Restaurant, error)
	ListMenu(ctx context.Context, actor access.Actor, restaurantID uint) ([]domain.MenuItem, error)
	CreateRestaurant(ctx context.Context, actor access.Actor, restaurant *domain.Restaurant) (domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, actor access.Actor, id uint, name, description string) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, actor access.Actor, id uint) error
	CreateMenuItem(ctx context.Context, actor access.Actor, restaurantID uint, item *domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, actor access.Actor, restaurantID, menuItemID uint, upd domain.MenuItem) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, actor access.Actor, restaurantID, menuItemID uint) error
}

type RestaurantHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewRestaurantHandler(catalogService CatalogService) *RestaurantHandler {
	return &RestaurantHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Country     string `json:"country" validate:"omitempty,oneof=INDIA AMERICA"`
}

type UpdateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Category    string  `json:"category"`
}

type UpdateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
	Category    string  `json:"category"`
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurants, err := h.catalogService.ListRestaurants(ctx, actor)
	if err != nil {
		logger.Error("Failed to list restaurants", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"restaurants": restaurants,
	})
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurant, err := h.catalogService.GetRestaurant(ctx, actor, id)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
	})
}

func (h *RestaurantHandler) ListMenu(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.ListMenu(ctx, actor, id)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"menu_items": items,
	})
}

func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurant, err := h.catalogService.CreateRestaurant(ctx, actor, &domain.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Country:     domain.Country(req.Country),
	})
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"restaurant": restaurant,
	})
}

func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	var req UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurant, err := h.catalogService.UpdateRestaurant(ctx, actor, id, req.Name, req.Description)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
	})
}

func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteRestaurant(ctx, actor, id); err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "restaurant deactivated",
	})
}

func (h *RestaurantHandler) CreateMenuItem(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.CreateMenuItem(ctx, actor, restaurantID, &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"menu_item": item,
	})
}

func (h *RestaurantHandler) UpdateMenuItem(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	restaurantID, err := parseID(c.Param("restaurantId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	menuItemID, err := parseID(c.Param("menuItemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu item ID"})
	}

	var req UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.UpdateMenuItem(ctx, actor, restaurantID, menuItemID, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"menu_item": item,
	})
}

func (h *RestaurantHandler) DeleteMenuItem(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	restaurantID, err := parseID(c.Param("restaurantId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant ID"})
	}

	menuItemID, err := parseID(c.Param("menuItemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu item ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteMenuItem(ctx, actor, restaurantID, menuItemID); err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "menu item deactivated",
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
