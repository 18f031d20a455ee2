package routes

import (
	"github.com/labstack/echo/v4"

	"pilarum/internal/authz"
	"pilarum/internal/controllers"
	"pilarum/pkg/middleware"
)

func runNominaRouter(g *echo.Group, ctrl *controllers.NominaController, authMW *middleware.AuthMiddleware) {
	g.GET("/nominas", ctrl.GetNominas, authMW.RequirePermission(authz.NominaVer))
	g.GET("/nominas/:id", ctrl.FindNomina, authMW.RequirePermission(authz.NominaVer))
	g.POST("/nominas", ctrl.CreateNomina, authMW.RequirePermission(authz.NominaCrear))
	g.PUT("/nominas/:id", ctrl.UpdateNomina, authMW.RequirePermission(authz.NominaEditar))
	g.PATCH("/nominas/:id/pagar", ctrl.MarcarPagada, authMW.RequirePermission(authz.NominaEditar))
	g.DELETE("/nominas/:id", ctrl.DeleteNomina, authMW.RequirePermission(authz.NominaEliminar))
}
