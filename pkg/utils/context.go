package utils

import (
	"context"

	"pilarum/internal/authz"
	"pilarum/pkg/contextkeys"
	apperrors "pilarum/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

func GetRoleIDFromCtx(ctx context.Context) (int, error) {
	id, ok := ctx.Value(contextkeys.UserRoleIDKey).(int)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// GetPermissionsFromCtx devuelve el conjunto de permisos de la sesión.
// Si no hay conjunto en el contexto devuelve uno vacío, que deniega todo.
func GetPermissionsFromCtx(ctx context.Context) authz.Set {
	set, ok := ctx.Value(contextkeys.UserPermissionsKey).(authz.Set)
	if !ok {
		return authz.Set{}
	}
	return set
}
