package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// OrdenCompra es un lote de materiales comprados ligado a un número de
// factura.
type OrdenCompra struct {
	ID            int
	NumeroFactura string
	Proveedor     string
	ProyectoID    null.Int
	Fecha         time.Time
	Monto         float64
	Descripcion   null.String
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
