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

type ProyectoController struct {
	proyectoService *services.ProyectoService
	logger          *zap.Logger
}

func NewProyectoController(proyectoService *services.ProyectoService, logger *zap.Logger) *ProyectoController {
	return &ProyectoController{
		proyectoService: proyectoService,
		logger:          logger,
	}
}

func (c *ProyectoController) GetProyectos(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	proyectos, total, err := c.proyectoService.GetProyectos(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, proyectos, "Listado de proyectos obtenido", http.StatusOK, total)
}

func (c *ProyectoController) FindProyecto(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proyecto, err := c.proyectoService.FindProyecto(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, proyecto, "Proyecto encontrado", http.StatusOK)
}

func (c *ProyectoController) CreateProyecto(ctx echo.Context) error {
	var payload dto.CreateProyectoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proyecto, err := c.proyectoService.CreateProyecto(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, proyecto, "Proyecto creado correctamente", http.StatusCreated)
}

func (c *ProyectoController) UpdateProyecto(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateProyectoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proyecto, err := c.proyectoService.UpdateProyecto(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, proyecto, "Proyecto actualizado correctamente", http.StatusOK)
}

func (c *ProyectoController) DeleteProyecto(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.proyectoService.DeleteProyecto(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Proyecto eliminado correctamente", http.StatusOK)
}
