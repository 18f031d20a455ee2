package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runUsuarioRouter(g *echo.Group, ctrl *controllers.UsuarioController, authMW *middleware.AuthMiddleware) {
	g.GET("/usuarios", ctrl.GetUsuarios, authMW.RequirePermission(authz.UsuariosVer))
	g.GET("/usuarios/all", ctrl.GetUsuariosAll, authMW.RequirePermission(authz.UsuariosVer))
	g.GET("/usuarios/:id", ctrl.FindUsuario, authMW.RequirePermission(authz.UsuariosVer))
	g.POST("/usuarios", ctrl.CreateUsuario, authMW.RequirePermission(authz.UsuariosCrear))
	g.PUT("/usuarios/:id", ctrl.UpdateUsuario, authMW.RequirePermission(authz.UsuariosEditar))
	g.DELETE("/usuarios/:id", ctrl.DeleteUsuario, authMW.RequirePermission(authz.UsuariosEliminar))
}
