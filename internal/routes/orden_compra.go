package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runOrdenCompraRouter(g *echo.Group, ctrl *controllers.OrdenCompraController, authMW *middleware.AuthMiddleware) {
	g.GET("/ordenes-compra", ctrl.GetOrdenesCompra, authMW.RequirePermission(authz.OrdenesCompraVer))
	g.GET("/ordenes-compra/:id", ctrl.FindOrdenCompra, authMW.RequirePermission(authz.OrdenesCompraVer))
	g.POST("/ordenes-compra", ctrl.CreateOrdenCompra, authMW.RequirePermission(authz.OrdenesCompraCrear))
	g.PUT("/ordenes-compra/:id", ctrl.UpdateOrdenCompra, authMW.RequirePermission(authz.OrdenesCompraEditar))
	g.DELETE("/ordenes-compra/:id", ctrl.DeleteOrdenCompra, authMW.RequirePermission(authz.OrdenesCompraEliminar))
}
