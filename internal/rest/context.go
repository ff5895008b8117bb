package rest

import (
	"foodcourt/business/access"

	"github.com/labstack/echo/v4"
)

// actorFrom pulls the authenticated Actor set by the auth middleware.
func actorFrom(c echo.Context) (access.Actor, bool) {
	actor, ok := c.Get("actor").(access.Actor)
	return actor, ok
}
