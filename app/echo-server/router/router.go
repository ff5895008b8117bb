package router

import (
	"foodcourt/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	auth.POST("/logout", handler.Logout, authRequired)
	auth.GET("/profile", handler.Profile, authRequired)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users", authRequired)

	users.GET("", handler.GetAllUsers)
	users.GET("/:id", handler.GetUserByID)
}

func SetupRestaurantRoutes(api *echo.Group, handler *rest.RestaurantHandler, authRequired echo.MiddlewareFunc) {
	restaurants := api.Group("/restaurants", authRequired)

	restaurants.GET("", handler.ListRestaurants)
	restaurants.GET("/:id", handler.GetRestaurant)
	restaurants.GET("/:id/menu", handler.ListMenu)
	restaurants.POST("", handler.CreateRestaurant)
	restaurants.PATCH("/:id", handler.UpdateRestaurant)
	restaurants.DELETE("/:id", handler.DeleteRestaurant)
	restaurants.POST("/:id/menu", handler.CreateMenuItem)
	restaurants.PATCH("/:restaurantId/menu/:menuItemId", handler.UpdateMenuItem)
	restaurants.DELETE("/:restaurantId/menu/:menuItemId", handler.DeleteMenuItem)
}

func SetupOrderRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", handler.CreateOrder)
	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.POST("/:id/checkout", handler.Checkout)
	orders.PATCH("/:id/cancel", handler.Cancel)
	orders.PATCH("/:id/status", handler.UpdateStatus)
}

func SetupPaymentMethodRoutes(api *echo.Group, handler *rest.PaymentMethodsHandler, authRequired echo.MiddlewareFunc) {
	paymentMethods := api.Group("/payment-methods", authRequired)

	paymentMethods.POST("", handler.Create)
	paymentMethods.GET("", handler.GetAll)
	paymentMethods.GET("/:id", handler.GetByID)
	paymentMethods.PATCH("/:id", handler.Update)
	paymentMethods.PATCH("/:id/set-default", handler.SetDefault)
	paymentMethods.DELETE("/:id", handler.Delete)
}
