package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pilarum/internal/controllers"
	"pilarum/internal/repositories"
	"pilarum/internal/services"
	"pilarum/pkg/middleware"
	"pilarum/pkg/service"
)

// InitRouter construye todo el árbol de dependencias y registra las rutas.
// Todas las rutas salvo login y refresh pasan por el middleware de
// autenticación y cada operación exige su permiso del catálogo.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	jwtSvc service.JWTService,
	authPermissionService services.AuthPermissionServiceInterface,
	logger *zap.Logger,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, logger)
	secure := api.Group("", authMW.Auth)

	// repositorios
	socioRepo := repositories.NewSocioRepository(dbConn, logger)
	proyectoRepo := repositories.NewProyectoRepository(dbConn, logger)
	maquinariaRepo := repositories.NewMaquinariaRepository(dbConn, logger)
	ordenRepo := repositories.NewOrdenCompraRepository(dbConn, logger)
	inventarioRepo := repositories.NewInventarioRepository(dbConn, logger)
	pendienteRepo := repositories.NewPendienteRepository(dbConn, logger)
	nominaRepo := repositories.NewNominaRepository(dbConn, logger)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn, logger)
	rolRepo := repositories.NewRolRepository(dbConn, logger)
	movimientoRepo := repositories.NewMovimientoRepository(dbConn, logger)

	// servicios
	socioService := services.NewSocioService(socioRepo, logger)
	proyectoService := services.NewProyectoService(proyectoRepo, socioRepo, logger)
	maquinariaService := services.NewMaquinariaService(maquinariaRepo, logger)
	ordenService := services.NewOrdenCompraService(ordenRepo, logger)
	inventarioService := services.NewInventarioService(inventarioRepo, logger)
	pendienteService := services.NewPendienteService(pendienteRepo, logger)
	nominaService := services.NewNominaService(nominaRepo, usuarioRepo, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, logger)
	rolService := services.NewRolService(rolRepo, authPermissionService, logger)
	authService := services.NewAuthService(usuarioRepo, authPermissionService, jwtSvc, logger)
	finanzasService := services.NewFinanzasService(movimientoRepo, socioRepo, proyectoRepo, maquinariaRepo, ordenRepo, logger)

	// controladores
	socioCtrl := controllers.NewSocioController(socioService, logger)
	proyectoCtrl := controllers.NewProyectoController(proyectoService, logger)
	maquinariaCtrl := controllers.NewMaquinariaController(maquinariaService, logger)
	ordenCtrl := controllers.NewOrdenCompraController(ordenService, logger)
	inventarioCtrl := controllers.NewInventarioController(inventarioService, logger)
	pendienteCtrl := controllers.NewPendienteController(pendienteService, logger)
	nominaCtrl := controllers.NewNominaController(nominaService, logger)
	usuarioCtrl := controllers.NewUsuarioController(usuarioService, logger)
	rolCtrl := controllers.NewRolController(rolService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)
	finanzasCtrl := controllers.NewFinanzasController(finanzasService, logger)

	runAuthRouter(api, secure, authCtrl, authMW)
	runSocioRouter(secure, socioCtrl, authMW)
	runProyectoRouter(secure, proyectoCtrl, authMW)
	runMaquinariaRouter(secure, maquinariaCtrl, authMW)
	runOrdenCompraRouter(secure, ordenCtrl, authMW)
	runInventarioRouter(secure, inventarioCtrl, authMW)
	runPendienteRouter(secure, pendienteCtrl, authMW)
	runNominaRouter(secure, nominaCtrl, authMW)
	runUsuarioRouter(secure, usuarioCtrl, authMW)
	runRolRouter(secure, rolCtrl, authMW)
	runFinanzasRouter(secure, finanzasCtrl, authMW)

	logger.Info("rutas registradas")
}
