package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionDTO es la respuesta de login/perfil: el usuario más su conjunto de
// permisos, con el que el front decide qué acciones mostrar.
type SessionDTO struct {
	Usuario  UsuarioDTO   `json:"usuario"`
	Permisos []int        `json:"permisos"`
	Tokens   TokenPairDTO `json:"tokens"`
}
