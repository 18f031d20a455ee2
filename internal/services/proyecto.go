package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

type ProyectoService struct {
	proyectoRepository repositories.ProyectoRepositoryInterface
	socioRepository    repositories.SocioRepositoryInterface
	logger             *zap.Logger
}

func NewProyectoService(
	proyectoRepository repositories.ProyectoRepositoryInterface,
	socioRepository repositories.SocioRepositoryInterface,
	logger *zap.Logger,
) *ProyectoService {
	return &ProyectoService{
		proyectoRepository: proyectoRepository,
		socioRepository:    socioRepository,
		logger:             logger,
	}
}

func (s *ProyectoService) GetProyectos(ctx context.Context, filter types.Filter) ([]dto.ProyectoDTO, uint64, error) {
	return s.proyectoRepository.GetProyectos(ctx, filter)
}

func (s *ProyectoService) GetProyectosBySocio(ctx context.Context, socioID int) ([]dto.ShortProyectoDTO, error) {
	return s.proyectoRepository.GetProyectosBySocio(ctx, socioID)
}

func (s *ProyectoService) FindProyecto(ctx context.Context, id int) (*dto.ProyectoDTO, error) {
	return s.proyectoRepository.FindProyecto(ctx, id)
}

func (s *ProyectoService) CreateProyecto(ctx context.Context, payload dto.CreateProyectoDTO) (*dto.ProyectoDTO, error) {
	if _, err := s.socioRepository.FindSocio(ctx, payload.SocioID); err != nil {
		return nil, apperrors.NewHttpError(400, "El socio indicado no existe", err, nil)
	}

	proyecto, err := s.proyectoRepository.CreateProyecto(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear el proyecto", zap.Error(err))
		return nil, err
	}
	s.logger.Info("proyecto creado", zap.Int("id", proyecto.ID), zap.String("nombre", proyecto.Nombre))
	return proyecto, nil
}

func (s *ProyectoService) UpdateProyecto(ctx context.Context, id int, payload dto.UpdateProyectoDTO) (*dto.ProyectoDTO, error) {
	if payload.SocioID.Valid {
		if _, err := s.socioRepository.FindSocio(ctx, payload.SocioID.Int); err != nil {
			return nil, apperrors.NewHttpError(400, "El socio indicado no existe", err, nil)
		}
	}

	if err := s.proyectoRepository.UpdateProyecto(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.proyectoRepository.FindProyecto(ctx, id)
}

func (s *ProyectoService) DeleteProyecto(ctx context.Context, id int) error {
	return s.proyectoRepository.DeleteProyecto(ctx, id)
}
