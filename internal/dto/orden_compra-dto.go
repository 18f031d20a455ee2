package dto

import "github.com/aarondl/null/v8"

type OrdenCompraDTO struct {
	ID            int              `json:"id"`
	NumeroFactura string           `json:"numero_factura"`
	Proveedor     string           `json:"proveedor"`
	Proyecto      ShortProyectoDTO `json:"proyecto"`
	Fecha         string           `json:"fecha"`
	Monto         float64          `json:"monto"`
	Descripcion   null.String      `json:"descripcion"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

type CreateOrdenCompraDTO struct {
	NumeroFactura string      `json:"numero_factura" validate:"required"`
	Proveedor     string      `json:"proveedor" validate:"required"`
	ProyectoID    null.Int    `json:"proyecto_id"`
	Fecha         string      `json:"fecha" validate:"required"`
	Monto         float64     `json:"monto" validate:"gte=0"`
	Descripcion   null.String `json:"descripcion"`
}

type UpdateOrdenCompraDTO struct {
	NumeroFactura null.String  `json:"numero_factura"`
	Proveedor     null.String  `json:"proveedor"`
	ProyectoID    null.Int     `json:"proyecto_id"`
	Fecha         null.String  `json:"fecha"`
	Monto         null.Float64 `json:"monto"`
	Descripcion   null.String  `json:"descripcion"`
}

type ShortOrdenCompraDTO struct {
	ID            int    `json:"id"`
	NumeroFactura string `json:"numero_factura"`
}
