package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Material struct {
	ID             int
	Nombre         string
	Categoria      string
	Unidad         string
	Cantidad       float64
	PrecioUnitario float64
	ProyectoID     null.Int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
