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

type UsuarioController struct {
	usuarioService *services.UsuarioService
	logger         *zap.Logger
}

func NewUsuarioController(usuarioService *services.UsuarioService, logger *zap.Logger) *UsuarioController {
	return &UsuarioController{
		usuarioService: usuarioService,
		logger:         logger,
	}
}

func (c *UsuarioController) GetUsuarios(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	usuarios, total, err := c.usuarioService.GetUsuarios(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuarios, "Listado de usuarios obtenido", http.StatusOK, total)
}

func (c *UsuarioController) GetUsuariosAll(ctx echo.Context) error {
	usuarios, err := c.usuarioService.GetUsuariosAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuarios, "Listado de usuarios obtenido", http.StatusOK)
}

func (c *UsuarioController) FindUsuario(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	usuario, err := c.usuarioService.FindUsuario(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "Usuario encontrado", http.StatusOK)
}

func (c *UsuarioController) CreateUsuario(ctx echo.Context) error {
	var payload dto.CreateUsuarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	usuario, err := c.usuarioService.CreateUsuario(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "Usuario creado correctamente", http.StatusCreated)
}

func (c *UsuarioController) UpdateUsuario(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateUsuarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	usuario, err := c.usuarioService.UpdateUsuario(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, usuario, "Usuario actualizado correctamente", http.StatusOK)
}

func (c *UsuarioController) DeleteUsuario(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.usuarioService.DeleteUsuario(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Usuario eliminado correctamente", http.StatusOK)
}
