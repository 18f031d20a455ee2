package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.Refresh)
	secure.GET("/auth/session", ctrl.Session)
}
