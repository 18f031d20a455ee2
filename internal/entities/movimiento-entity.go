package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Movimiento es el apunte financiero unificado: cada fila proviene de un
// proyecto, un gasto o compra de maquinaria o una orden de compra, y el
// tipo_origen discrimina cuál.
type Movimiento struct {
	ID            int
	TipoOrigen    string
	SocioID       null.Int
	ProyectoID    null.Int
	EquipoID      null.Int
	OrdenCompraID null.Int
	NumeroFactura null.String
	Concepto      string
	Monto         float64
	Fecha         time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
