package entities

import "time"

type Usuario struct {
	ID           int
	Nombre       string
	Email        string
	PasswordHash string
	RolID        int
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
