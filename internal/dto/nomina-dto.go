package dto

import "github.com/aarondl/null/v8"

type NominaDTO struct {
	ID          int              `json:"id"`
	Empleado    ShortUsuarioDTO  `json:"empleado"`
	Proyecto    ShortProyectoDTO `json:"proyecto"`
	Periodo     string           `json:"periodo"`
	SalarioBase float64          `json:"salario_base"`
	HorasExtra  float64          `json:"horas_extra"`
	Deducciones float64          `json:"deducciones"`
	Total       float64          `json:"total"`
	Pagada      bool             `json:"pagada"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type CreateNominaDTO struct {
	EmpleadoID  int      `json:"empleado_id" validate:"required,gt=0"`
	ProyectoID  null.Int `json:"proyecto_id"`
	Periodo     string   `json:"periodo" validate:"required,len=7"`
	SalarioBase float64  `json:"salario_base" validate:"gte=0"`
	HorasExtra  float64  `json:"horas_extra" validate:"gte=0"`
	Deducciones float64  `json:"deducciones" validate:"gte=0"`
}

type UpdateNominaDTO struct {
	ProyectoID  null.Int     `json:"proyecto_id"`
	Periodo     null.String  `json:"periodo"`
	SalarioBase null.Float64 `json:"salario_base"`
	HorasExtra  null.Float64 `json:"horas_extra"`
	Deducciones null.Float64 `json:"deducciones"`
	Pagada      null.Bool    `json:"pagada"`
}
