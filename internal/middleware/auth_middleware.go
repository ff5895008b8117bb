package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"
	"foodcourt/pkg/utils"

	"github.com/labstack/echo/v4"
)

// SessionValidator checks that a bearer token is still live server-side.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// UserLoader resolves the token subject to a user row. Role and country are
// always taken from the database, never from token claims.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type responseError struct {
	Message string `json:"message"`
}

// AuthMiddleware authenticates the request and puts the resulting Actor
// into the echo context under "actor".
func AuthMiddleware(sessions SessionValidator, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "missing authorization header"})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "invalid authorization format"})
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "invalid token"})
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "token expired"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			sessionUserID, err := sessions.ValidateSession(ctx, tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "token expired or revoked"})
			}

			if sessionUserID != claims.UserID {
				logger.Error("User ID mismatch between JWT and session store")
				return c.JSON(http.StatusUnauthorized, responseError{Message: "invalid token"})
			}

			userID, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "invalid token subject"})
			}

			user, err := users.FindByID(ctx, uint(userID))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, responseError{Message: "unknown user"})
			}

			c.Set("actor", access.Actor{
				UserID:  user.ID,
				Role:    user.Role,
				Country: user.Country,
			})
			c.Set("user_id", user.ID)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

// ActorFromContext pulls the Actor placed by AuthMiddleware.
func ActorFromContext(c echo.Context) (access.Actor, bool) {
	actor, ok := c.Get("actor").(access.Actor)
	return actor, ok
}
