package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runFinanzasRouter(g *echo.Group, ctrl *controllers.FinanzasController, authMW *middleware.AuthMiddleware) {
	g.GET("/finanzas/movimientos", ctrl.SearchMovimientos, authMW.RequirePermission(authz.FinanzasVer))
	g.GET("/finanzas/movimientos/export", ctrl.ExportMovimientos, authMW.RequirePermission(authz.FinanzasExportar))
	g.POST("/finanzas/movimientos", ctrl.CreateMovimiento, authMW.RequirePermission(authz.FinanzasVer))
	g.DELETE("/finanzas/movimientos/:id", ctrl.DeleteMovimiento, authMW.RequirePermission(authz.FinanzasVer))

	// selectores dependientes del formulario de búsqueda
	g.GET("/finanzas/empresas", ctrl.GetEmpresas, authMW.RequirePermission(authz.FinanzasVer))
	g.GET("/finanzas/empresas/:id/proyectos", ctrl.GetProyectosDeEmpresa, authMW.RequirePermission(authz.FinanzasVer))
	g.GET("/finanzas/equipos", ctrl.GetEquipos, authMW.RequirePermission(authz.FinanzasVer))
	g.GET("/finanzas/ordenes", ctrl.GetOrdenesCompra, authMW.RequirePermission(authz.FinanzasVer))
}
