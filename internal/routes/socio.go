package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runSocioRouter(g *echo.Group, ctrl *controllers.SocioController, authMW *middleware.AuthMiddleware) {
	g.GET("/socios", ctrl.GetSocios, authMW.RequirePermission(authz.SociosVer))
	g.GET("/socios/all", ctrl.GetSociosAll, authMW.RequirePermission(authz.SociosVer))
	g.GET("/socios/:id", ctrl.FindSocio, authMW.RequirePermission(authz.SociosVer))
	g.POST("/socios", ctrl.CreateSocio, authMW.RequirePermission(authz.SociosCrear))
	g.PUT("/socios/:id", ctrl.UpdateSocio, authMW.RequirePermission(authz.SociosEditar))
	g.DELETE("/socios/:id", ctrl.DeleteSocio, authMW.RequirePermission(authz.SociosEliminar))
}
