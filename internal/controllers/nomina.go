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

type NominaController struct {
	nominaService *services.NominaService
	logger        *zap.Logger
}

func NewNominaController(nominaService *services.NominaService, logger *zap.Logger) *NominaController {
	return &NominaController{
		nominaService: nominaService,
		logger:        logger,
	}
}

func (c *NominaController) GetNominas(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	nominas, total, err := c.nominaService.GetNominas(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nominas, "Listado de nóminas obtenido", http.StatusOK, total)
}

func (c *NominaController) FindNomina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	nomina, err := c.nominaService.FindNomina(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nomina, "Nómina encontrada", http.StatusOK)
}

func (c *NominaController) CreateNomina(ctx echo.Context) error {
	var payload dto.CreateNominaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	nomina, err := c.nominaService.CreateNomina(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nomina, "Nómina creada correctamente", http.StatusCreated)
}

func (c *NominaController) UpdateNomina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateNominaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	nomina, err := c.nominaService.UpdateNomina(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nomina, "Nómina actualizada correctamente", http.StatusOK)
}

func (c *NominaController) MarcarPagada(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	nomina, err := c.nominaService.MarcarPagada(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nomina, "Nómina marcada como pagada", http.StatusOK)
}

func (c *NominaController) DeleteNomina(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.nominaService.DeleteNomina(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Nómina eliminada correctamente", http.StatusOK)
}
