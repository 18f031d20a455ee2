package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
	"pilarum/pkg/utils"
)

type UsuarioService struct {
	usuarioRepository repositories.UsuarioRepositoryInterface
	logger            *zap.Logger
}

func NewUsuarioService(usuarioRepository repositories.UsuarioRepositoryInterface, logger *zap.Logger) *UsuarioService {
	return &UsuarioService{
		usuarioRepository: usuarioRepository,
		logger:            logger,
	}
}

func (s *UsuarioService) GetUsuarios(ctx context.Context, filter types.Filter) ([]dto.UsuarioDTO, uint64, error) {
	return s.usuarioRepository.GetUsuarios(ctx, filter)
}

func (s *UsuarioService) GetUsuariosAll(ctx context.Context) ([]dto.ShortUsuarioDTO, error) {
	return s.usuarioRepository.GetUsuariosAll(ctx)
}

func (s *UsuarioService) FindUsuario(ctx context.Context, id int) (*dto.UsuarioDTO, error) {
	return s.usuarioRepository.FindUsuario(ctx, id)
}

func (s *UsuarioService) CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("error al generar el hash de la contraseña", zap.Error(err))
		return nil, err
	}

	usuario, err := s.usuarioRepository.CreateUsuario(ctx, payload, hash)
	if err != nil {
		s.logger.Error("error al crear el usuario", zap.Error(err))
		return nil, err
	}
	s.logger.Info("usuario creado", zap.Int("id", usuario.ID), zap.String("email", usuario.Email))
	return usuario, nil
}

func (s *UsuarioService) UpdateUsuario(ctx context.Context, id int, payload dto.UpdateUsuarioDTO) (*dto.UsuarioDTO, error) {
	if err := s.usuarioRepository.UpdateUsuario(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.usuarioRepository.FindUsuario(ctx, id)
}

func (s *UsuarioService) DeleteUsuario(ctx context.Context, id int) error {
	return s.usuarioRepository.DeleteUsuario(ctx, id)
}
