package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "pilarum/pkg/errors"
)

// parseIDParam lee el parámetro :id de la ruta. Un ID no numérico o menor
// que 1 es siempre un 400.
func parseIDParam(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Formato de ID no válido",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
