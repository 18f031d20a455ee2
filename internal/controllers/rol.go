package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/services"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/utils"
)

type RolController struct {
	rolService *services.RolService
	logger     *zap.Logger
}

func NewRolController(rolService *services.RolService, logger *zap.Logger) *RolController {
	return &RolController{
		rolService: rolService,
		logger:     logger,
	}
}

func (c *RolController) GetRoles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	roles, total, err := c.rolService.GetRoles(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, roles, "Listado de roles obtenido", http.StatusOK, total)
}

func (c *RolController) GetCatalogoPermisos(ctx echo.Context) error {
	catalogo := c.rolService.GetCatalogoPermisos(ctx.Request().Context())
	return utils.SuccessResponse(ctx, catalogo, "Catálogo de permisos obtenido", http.StatusOK)
}

func (c *RolController) FindRol(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rol, err := c.rolService.FindRol(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, rol, "Rol encontrado", http.StatusOK)
}

func (c *RolController) CreateRol(ctx echo.Context) error {
	var payload dto.CreateRolDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rol, err := c.rolService.CreateRol(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, rol, "Rol creado correctamente", http.StatusCreated)
}

func (c *RolController) UpdateRol(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRolDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rol, err := c.rolService.UpdateRol(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, rol, "Rol actualizado correctamente", http.StatusOK)
}

// AssignPermisos recibe la selección subgrupo → etiquetas y responde con los
// IDs asignados y las etiquetas que no se pudieron catalogar.
func (c *RolController) AssignPermisos(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AssignPermisosDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.rolService.AssignPermisos(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, result, "Permisos del rol actualizados", http.StatusOK)
}

func (c *RolController) DeleteRol(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.rolService.DeleteRol(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Rol eliminado correctamente", http.StatusOK)
}
