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

type SocioController struct {
	socioService *services.SocioService
	logger       *zap.Logger
}

func NewSocioController(socioService *services.SocioService, logger *zap.Logger) *SocioController {
	return &SocioController{
		socioService: socioService,
		logger:       logger,
	}
}

func (c *SocioController) GetSocios(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	socios, total, err := c.socioService.GetSocios(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, socios, "Listado de socios obtenido", http.StatusOK, total)
}

func (c *SocioController) GetSociosAll(ctx echo.Context) error {
	socios, err := c.socioService.GetSociosAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, socios, "Listado de socios obtenido", http.StatusOK)
}

func (c *SocioController) FindSocio(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	socio, err := c.socioService.FindSocio(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, socio, "Socio encontrado", http.StatusOK)
}

func (c *SocioController) CreateSocio(ctx echo.Context) error {
	var payload dto.CreateSocioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	socio, err := c.socioService.CreateSocio(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, socio, "Socio creado correctamente", http.StatusCreated)
}

func (c *SocioController) UpdateSocio(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateSocioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	socio, err := c.socioService.UpdateSocio(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, socio, "Socio actualizado correctamente", http.StatusOK)
}

func (c *SocioController) DeleteSocio(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.socioService.DeleteSocio(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Socio eliminado correctamente", http.StatusOK)
}
