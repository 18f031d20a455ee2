package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runMaquinariaRouter(g *echo.Group, ctrl *controllers.MaquinariaController, authMW *middleware.AuthMiddleware) {
	g.GET("/maquinaria", ctrl.GetMaquinaria, authMW.RequirePermission(authz.MaquinariaVer))
	g.GET("/maquinaria/:id", ctrl.FindMaquina, authMW.RequirePermission(authz.MaquinariaVer))
	g.POST("/maquinaria", ctrl.CreateMaquina, authMW.RequirePermission(authz.MaquinariaCrear))
	g.PUT("/maquinaria/:id", ctrl.UpdateMaquina, authMW.RequirePermission(authz.MaquinariaEditar))
	g.DELETE("/maquinaria/:id", ctrl.DeleteMaquina, authMW.RequirePermission(authz.MaquinariaEliminar))
}
