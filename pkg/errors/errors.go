package errors

import "fmt"

var (
	// JWT y tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token no válido")
	ErrInvalidToken         = fmt.Errorf("token no válido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")
	ErrTokenIsNotRefresh    = fmt.Errorf("el token no es un refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("el token no es un access token")

	// Autorización
	ErrEmptyAuthHeader    = fmt.Errorf("falta la cabecera de autorización")
	ErrInvalidAuthHeader  = fmt.Errorf("formato de la cabecera de autorización no válido")
	ErrInvalidCredentials = fmt.Errorf("credenciales incorrectas")
	ErrUnauthorized       = fmt.Errorf("no autorizado")
	ErrForbidden          = fmt.Errorf("acceso denegado")

	// Contexto
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID no encontrado en el contexto de la petición")

	// Generales
	ErrNotFound       = fmt.Errorf("registro no encontrado")
	ErrBadRequest     = fmt.Errorf("petición no válida")
	ErrInternalServer = fmt.Errorf("error interno del servidor")
)

// HttpError lleva el código HTTP junto con el error original y detalles
// opcionales para la respuesta JSON.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
