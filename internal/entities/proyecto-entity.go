package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	ProyectoEstadoActivo     = "activo"
	ProyectoEstadoPausado    = "pausado"
	ProyectoEstadoFinalizado = "finalizado"
)

type Proyecto struct {
	ID          int
	Nombre      string
	SocioID     int
	Direccion   null.String
	FechaInicio time.Time
	FechaFin    null.Time
	Presupuesto float64
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
