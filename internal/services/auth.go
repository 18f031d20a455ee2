package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/service"
	"pilarum/pkg/utils"
)

type AuthService struct {
	usuarioRepository repositories.UsuarioRepositoryInterface
	permService       AuthPermissionServiceInterface
	jwtService        service.JWTService
	logger            *zap.Logger
}

func NewAuthService(
	usuarioRepository repositories.UsuarioRepositoryInterface,
	permService AuthPermissionServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		usuarioRepository: usuarioRepository,
		permService:       permService,
		jwtService:        jwtService,
		logger:            logger,
	}
}

// Login valida credenciales y devuelve la sesión completa: usuario, permisos
// y par de tokens. Un email inexistente y una contraseña errónea responden
// lo mismo.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.SessionDTO, error) {
	usuario, err := s.usuarioRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !usuario.Activo {
		return nil, apperrors.ErrForbidden
	}

	if !utils.CheckPassword(usuario.PasswordHash, payload.Password) {
		s.logger.Warn("intento de login fallido", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildSession(ctx, usuario.ID, usuario.RolID)
}

// Refresh emite un nuevo par de tokens a partir de un refresh token válido.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	usuario, err := s.usuarioRepository.FindUsuario(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !usuario.Activo {
		return nil, apperrors.ErrForbidden
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Rol.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// Session reconstruye la sesión del usuario autenticado, por ejemplo tras
// recargar la página.
func (s *AuthService) Session(ctx context.Context, userID, rolID int) (*dto.SessionDTO, error) {
	return s.buildSession(ctx, userID, rolID)
}

func (s *AuthService) buildSession(ctx context.Context, userID, rolID int) (*dto.SessionDTO, error) {
	usuario, err := s.usuarioRepository.FindUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}

	permisos, err := s.permService.GetRolePermissionIDs(ctx, rolID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(userID, rolID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionDTO{
		Usuario:  *usuario,
		Permisos: permisos,
		Tokens:   dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh},
	}, nil
}
