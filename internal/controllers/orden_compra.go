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

type OrdenCompraController struct {
	ordenCompraService *services.OrdenCompraService
	logger             *zap.Logger
}

func NewOrdenCompraController(ordenCompraService *services.OrdenCompraService, logger *zap.Logger) *OrdenCompraController {
	return &OrdenCompraController{
		ordenCompraService: ordenCompraService,
		logger:             logger,
	}
}

func (c *OrdenCompraController) GetOrdenesCompra(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	ordenes, total, err := c.ordenCompraService.GetOrdenesCompra(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, ordenes, "Listado de órdenes de compra obtenido", http.StatusOK, total)
}

func (c *OrdenCompraController) FindOrdenCompra(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orden, err := c.ordenCompraService.FindOrdenCompra(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, orden, "Orden de compra encontrada", http.StatusOK)
}

func (c *OrdenCompraController) CreateOrdenCompra(ctx echo.Context) error {
	var payload dto.CreateOrdenCompraDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orden, err := c.ordenCompraService.CreateOrdenCompra(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, orden, "Orden de compra creada correctamente", http.StatusCreated)
}

func (c *OrdenCompraController) UpdateOrdenCompra(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateOrdenCompraDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orden, err := c.ordenCompraService.UpdateOrdenCompra(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, orden, "Orden de compra actualizada correctamente", http.StatusOK)
}

func (c *OrdenCompraController) DeleteOrdenCompra(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.ordenCompraService.DeleteOrdenCompra(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Orden de compra eliminada correctamente", http.StatusOK)
}
