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

type InventarioController struct {
	inventarioService *services.InventarioService
	logger            *zap.Logger
}

func NewInventarioController(inventarioService *services.InventarioService, logger *zap.Logger) *InventarioController {
	return &InventarioController{
		inventarioService: inventarioService,
		logger:            logger,
	}
}

func (c *InventarioController) GetMateriales(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	materiales, total, err := c.inventarioService.GetMateriales(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, materiales, "Inventario obtenido", http.StatusOK, total)
}

func (c *InventarioController) FindMaterial(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.inventarioService.FindMaterial(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, material, "Material encontrado", http.StatusOK)
}

func (c *InventarioController) CreateMaterial(ctx echo.Context) error {
	var payload dto.CreateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.inventarioService.CreateMaterial(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, material, "Material creado correctamente", http.StatusCreated)
}

func (c *InventarioController) UpdateMaterial(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaterialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.inventarioService.UpdateMaterial(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, material, "Material actualizado correctamente", http.StatusOK)
}

// AjusteStockDTO transporta el delta del ajuste manual de stock.
type AjusteStockDTO struct {
	Delta float64 `json:"delta" validate:"required"`
}

func (c *InventarioController) AjustarCantidad(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload AjusteStockDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	material, err := c.inventarioService.AjustarCantidad(ctx.Request().Context(), id, payload.Delta)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, material, "Stock ajustado correctamente", http.StatusOK)
}

func (c *InventarioController) DeleteMaterial(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.inventarioService.DeleteMaterial(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Material eliminado correctamente", http.StatusOK)
}
