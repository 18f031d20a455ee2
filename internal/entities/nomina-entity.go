package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Nomina es una entrada de nómina de un empleado, opcionalmente imputada a
// un proyecto. Periodo viaja como "YYYY-MM".
type Nomina struct {
	ID          int
	EmpleadoID  int
	ProyectoID  null.Int
	Periodo     string
	SalarioBase float64
	HorasExtra  float64
	Deducciones float64
	Total       float64
	Pagada      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
