package dto

import "github.com/aarondl/null/v8"

type MovimientoDTO struct {
	ID            int         `json:"id"`
	TipoOrigen    string      `json:"tipo_origen"`
	SocioID       null.Int    `json:"socio_id"`
	ProyectoID    null.Int    `json:"proyecto_id"`
	EquipoID      null.Int    `json:"equipo_id"`
	OrdenCompraID null.Int    `json:"orden_compra_id"`
	NumeroFactura null.String `json:"numero_factura"`
	Concepto      string      `json:"concepto"`
	Monto         float64     `json:"monto"`
	Fecha         string      `json:"fecha"`
	CreatedAt     string      `json:"created_at"`
}

type CreateMovimientoDTO struct {
	TipoOrigen    string      `json:"tipo_origen" validate:"required,oneof=proyecto gasto_maquinaria compra_maquinaria orden_compra"`
	SocioID       null.Int    `json:"socio_id"`
	ProyectoID    null.Int    `json:"proyecto_id"`
	EquipoID      null.Int    `json:"equipo_id"`
	OrdenCompraID null.Int    `json:"orden_compra_id"`
	NumeroFactura null.String `json:"numero_factura"`
	Concepto      string      `json:"concepto" validate:"required"`
	Monto         float64     `json:"monto" validate:"required"`
	Fecha         string      `json:"fecha" validate:"required"`
}

// MovimientosResultDTO es la respuesta de la búsqueda de finanzas: el
// listado más el total agregado sobre TODO el resultado, no solo la página.
type MovimientosResultDTO struct {
	Movimientos []MovimientoDTO `json:"movimientos"`
	TotalMonto  float64         `json:"total_monto"`
}
