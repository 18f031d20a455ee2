package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runInventarioRouter(g *echo.Group, ctrl *controllers.InventarioController, authMW *middleware.AuthMiddleware) {
	g.GET("/inventario", ctrl.GetMateriales, authMW.RequirePermission(authz.InventarioVer))
	g.GET("/inventario/:id", ctrl.FindMaterial, authMW.RequirePermission(authz.InventarioVer))
	g.POST("/inventario", ctrl.CreateMaterial, authMW.RequirePermission(authz.InventarioCrear))
	g.PUT("/inventario/:id", ctrl.UpdateMaterial, authMW.RequirePermission(authz.InventarioEditar))
	g.PATCH("/inventario/:id/stock", ctrl.AjustarCantidad, authMW.RequirePermission(authz.InventarioEditar))
	g.DELETE("/inventario/:id", ctrl.DeleteMaterial, authMW.RequirePermission(authz.InventarioEliminar))
}
