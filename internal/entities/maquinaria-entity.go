package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Maquinaria struct {
	ID         int
	Nombre     string
	Matricula  string
	Tipo       string
	ProyectoID null.Int
	CosteHora  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
