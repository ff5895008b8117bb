package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetUserByID(ctx context.Context, actor access.Actor, id uint) (domain.User, error)
	GetAllUsers(ctx context.Context, actor access.Actor) ([]domain.User, error)
}

type UserHandler struct {
	userService UserService
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		timeout:     10 * time.Second,
	}
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx, actor)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var userID uint
	if _, err := fmt.Sscan(c.Param("id"), &userID); err != nil {
		logger.Error("Invalid user ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.GetUserByID(ctx, actor, userID)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
