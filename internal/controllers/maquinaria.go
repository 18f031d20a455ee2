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

type MaquinariaController struct {
	maquinariaService *services.MaquinariaService
	logger            *zap.Logger
}

func NewMaquinariaController(maquinariaService *services.MaquinariaService, logger *zap.Logger) *MaquinariaController {
	return &MaquinariaController{
		maquinariaService: maquinariaService,
		logger:            logger,
	}
}

func (c *MaquinariaController) GetMaquinaria(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	maquinas, total, err := c.maquinariaService.GetMaquinaria(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, maquinas, "Listado de maquinaria obtenido", http.StatusOK, total)
}

func (c *MaquinariaController) FindMaquina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	maquina, err := c.maquinariaService.FindMaquina(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, maquina, "Máquina encontrada", http.StatusOK)
}

func (c *MaquinariaController) CreateMaquina(ctx echo.Context) error {
	var payload dto.CreateMaquinariaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	maquina, err := c.maquinariaService.CreateMaquina(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, maquina, "Máquina creada correctamente", http.StatusCreated)
}

func (c *MaquinariaController) UpdateMaquina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaquinariaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	maquina, err := c.maquinariaService.UpdateMaquina(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, maquina, "Máquina actualizada correctamente", http.StatusOK)
}

func (c *MaquinariaController) DeleteMaquina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.maquinariaService.DeleteMaquina(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Máquina eliminada correctamente", http.StatusOK)
}
