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

type PendienteController struct {
	pendienteService *services.PendienteService
	logger           *zap.Logger
}

func NewPendienteController(pendienteService *services.PendienteService, logger *zap.Logger) *PendienteController {
	return &PendienteController{
		pendienteService: pendienteService,
		logger:           logger,
	}
}

func (c *PendienteController) GetPendientes(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	pendientes, total, err := c.pendienteService.GetPendientes(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, pendientes, "Listado de tareas obtenido", http.StatusOK, total)
}

func (c *PendienteController) FindPendiente(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pendiente, err := c.pendienteService.FindPendiente(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, pendiente, "Tarea encontrada", http.StatusOK)
}

func (c *PendienteController) CreatePendiente(ctx echo.Context) error {
	var payload dto.CreatePendienteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pendiente, err := c.pendienteService.CreatePendiente(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, pendiente, "Tarea creada correctamente", http.StatusCreated)
}

func (c *PendienteController) UpdatePendiente(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePendienteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pendiente, err := c.pendienteService.UpdatePendiente(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, pendiente, "Tarea actualizada correctamente", http.StatusOK)
}

func (c *PendienteController) CambiarEstado(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CambiarEstadoPendienteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pendiente, err := c.pendienteService.CambiarEstado(ctx.Request().Context(), id, payload.Estado)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, pendiente, "Estado de la tarea actualizado", http.StatusOK)
}

func (c *PendienteController) DeletePendiente(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.pendienteService.DeletePendiente(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Tarea eliminada correctamente", http.StatusOK)
}
