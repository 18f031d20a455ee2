package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/search"
	"pilarum/internal/services"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
	"pilarum/pkg/utils"
)

type FinanzasController struct {
	finanzasService *services.FinanzasService
	logger          *zap.Logger
}

func NewFinanzasController(finanzasService *services.FinanzasService, logger *zap.Logger) *FinanzasController {
	return &FinanzasController{
		finanzasService: finanzasService,
		logger:          logger,
	}
}

// SearchMovimientos ejecuta la búsqueda de movimientos y responde en JSON
// con la página pedida más el monto total del resultado completo.
func (c *FinanzasController) SearchMovimientos(ctx echo.Context) error {
	query := ctx.Request().URL.Query()
	state := search.ParseFromQuery(query)
	filter := utils.ParseFilterFromQuery(query)

	result, total, err := c.finanzasService.SearchMovimientos(ctx.Request().Context(), state, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, result, "Búsqueda de movimientos completada", http.StatusOK, total)
}

// ExportMovimientos vuelca el resultado completo de la búsqueda, sin
// paginar, como hoja de cálculo.
func (c *FinanzasController) ExportMovimientos(ctx echo.Context) error {
	state := search.ParseFromQuery(ctx.Request().URL.Query())

	result, _, err := c.finanzasService.SearchMovimientos(ctx.Request().Context(), state, types.Filter{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.respondWithXLSX(ctx, result)
}

var movimientoHeaders = []interface{}{
	"ID", "Categoría", "Concepto", "Nº factura", "Monto", "Fecha",
}

func (c *FinanzasController) respondWithXLSX(ctx echo.Context, result *dto.MovimientosResultDTO) error {
	f := excelize.NewFile()
	sheet := "Movimientos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &movimientoHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, m := range result.Movimientos {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{m.ID, m.TipoOrigen, m.Concepto, m.NumeroFactura.String, m.Monto, m.Fecha}
		f.SetSheetRow(sheet, cell, &row)
	}

	totalCell, _ := excelize.CoordinatesToCellName(5, len(result.Movimientos)+3)
	f.SetCellValue(sheet, totalCell, result.TotalMonto)

	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "F", 16)

	fileName := fmt.Sprintf("movimientos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *FinanzasController) CreateMovimiento(ctx echo.Context) error {
	var payload dto.CreateMovimientoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la petición no válido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movimiento, err := c.finanzasService.CreateMovimiento(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, movimiento, "Movimiento registrado", http.StatusCreated)
}

func (c *FinanzasController) DeleteMovimiento(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.finanzasService.DeleteMovimiento(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Movimiento eliminado", http.StatusOK)
}

// Selectores dependientes del formulario de búsqueda.

func (c *FinanzasController) GetEmpresas(ctx echo.Context) error {
	empresas, err := c.finanzasService.GetEmpresas(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, empresas, "Listado de empresas obtenido", http.StatusOK)
}

func (c *FinanzasController) GetProyectosDeEmpresa(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proyectos, err := c.finanzasService.GetProyectosDeEmpresa(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, proyectos, "Proyectos de la empresa obtenidos", http.StatusOK)
}

func (c *FinanzasController) GetEquipos(ctx echo.Context) error {
	equipos, err := c.finanzasService.GetEquipos(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipos, "Listado de equipos obtenido", http.StatusOK)
}

func (c *FinanzasController) GetOrdenesCompra(ctx echo.Context) error {
	ordenes, err := c.finanzasService.GetOrdenesCompra(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ordenes, "Listado de órdenes obtenido", http.StatusOK)
}
