package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runProyectoRouter(g *echo.Group, ctrl *controllers.ProyectoController, authMW *middleware.AuthMiddleware) {
	g.GET("/proyectos", ctrl.GetProyectos, authMW.RequirePermission(authz.ProyectosVer))
	g.GET("/proyectos/:id", ctrl.FindProyecto, authMW.RequirePermission(authz.ProyectosVer))
	g.POST("/proyectos", ctrl.CreateProyecto, authMW.RequirePermission(authz.ProyectosCrear))
	g.PUT("/proyectos/:id", ctrl.UpdateProyecto, authMW.RequirePermission(authz.ProyectosEditar))
	g.DELETE("/proyectos/:id", ctrl.DeleteProyecto, authMW.RequirePermission(authz.ProyectosEliminar))
}
