package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Socio es la empresa colaboradora que actúa de ámbito superior para
// proyectos y finanzas.
type Socio struct {
	ID        int
	Nombre    string
	CIF       string
	Direccion null.String
	Telefono  null.String
	Email     null.String
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
