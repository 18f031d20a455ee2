package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runRolRouter(g *echo.Group, ctrl *controllers.RolController, authMW *middleware.AuthMiddleware) {
	g.GET("/roles", ctrl.GetRoles, authMW.RequirePermission(authz.RolesVer))
	g.GET("/roles/:id", ctrl.FindRol, authMW.RequirePermission(authz.RolesVer))
	g.POST("/roles", ctrl.CreateRol, authMW.RequirePermission(authz.RolesCrear))
	g.PUT("/roles/:id", ctrl.UpdateRol, authMW.RequirePermission(authz.RolesEditar))
	g.PUT("/roles/:id/permisos", ctrl.AssignPermisos, authMW.RequirePermission(authz.RolesEditar))
	g.DELETE("/roles/:id", ctrl.DeleteRol, authMW.RequirePermission(authz.RolesEliminar))

	g.GET("/permisos", ctrl.GetCatalogoPermisos, authMW.RequirePermission(authz.PermisosVer))
}
