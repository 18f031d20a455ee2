package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runPendienteRouter(g *echo.Group, ctrl *controllers.PendienteController, authMW *middleware.AuthMiddleware) {
	g.GET("/pendientes", ctrl.GetPendientes, authMW.RequirePermission(authz.PendientesVer))
	g.GET("/pendientes/:id", ctrl.FindPendiente, authMW.RequirePermission(authz.PendientesVer))
	g.POST("/pendientes", ctrl.CreatePendiente, authMW.RequirePermission(authz.PendientesCrear))
	g.PUT("/pendientes/:id", ctrl.UpdatePendiente, authMW.RequirePermission(authz.PendientesEditar))
	g.PATCH("/pendientes/:id/estado", ctrl.CambiarEstado, authMW.RequirePermission(authz.PendientesEditar))
	g.DELETE("/pendientes/:id", ctrl.DeletePendiente, authMW.RequirePermission(authz.PendientesEliminar))
}
