package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pilarum/internal/authz"
	"pilarum/pkg/contextkeys"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/service"
	"pilarum/pkg/utils"
)

// PermissionLoader obtiene los IDs de permiso de un rol; lo implementa el
// servicio de permisos con su caché en redis.
type PermissionLoader interface {
	GetRolePermissionIDs(ctx context.Context, roleID int) ([]int, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	permLoader PermissionLoader
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, permLoader PermissionLoader, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		permLoader: permLoader,
		logger:     logger,
	}
}

// Auth valida el access token y deja en el contexto el usuario, su rol y su
// conjunto de permisos, listo para que RequirePermission lo consulte.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: cabecera Authorization vacía")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: formato de cabecera Authorization no válido")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: error validando el token", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: intento de acceso con un refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()

		permIDs, err := m.permLoader.GetRolePermissionIDs(ctx, claims.RoleID)
		if err != nil {
			m.logger.Error("AuthMiddleware: no se pudieron cargar los permisos del rol",
				zap.Int("roleID", claims.RoleID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrInternalServer, m.logger)
		}

		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleIDKey, claims.RoleID)
		ctx = context.WithValue(ctx, contextkeys.UserPermissionsKey, authz.NewSet(permIDs))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePermission corta la petición con 403 si el conjunto de la sesión
// no contiene el permiso pedido.
func (m *AuthMiddleware) RequirePermission(permissionID int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perms := utils.GetPermissionsFromCtx(c.Request().Context())
			if !perms.Has(permissionID) {
				m.logger.Warn("RequirePermission: acceso denegado",
					zap.Int("permissionID", permissionID),
					zap.String("uri", c.Request().RequestURI),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
