package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Rol es un paquete con nombre de IDs de permiso.
type Rol struct {
	ID          int
	Nombre      string
	Descripcion null.String
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
