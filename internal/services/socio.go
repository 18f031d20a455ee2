package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
)

type SocioService struct {
	socioRepository repositories.SocioRepositoryInterface
	logger          *zap.Logger
}

func NewSocioService(socioRepository repositories.SocioRepositoryInterface, logger *zap.Logger) *SocioService {
	return &SocioService{
		socioRepository: socioRepository,
		logger:          logger,
	}
}

func (s *SocioService) GetSocios(ctx context.Context, filter types.Filter) ([]dto.SocioDTO, uint64, error) {
	return s.socioRepository.GetSocios(ctx, filter)
}

func (s *SocioService) GetSociosAll(ctx context.Context) ([]dto.ShortSocioDTO, error) {
	return s.socioRepository.GetSociosAll(ctx)
}

func (s *SocioService) FindSocio(ctx context.Context, id int) (*dto.SocioDTO, error) {
	return s.socioRepository.FindSocio(ctx, id)
}

func (s *SocioService) CreateSocio(ctx context.Context, payload dto.CreateSocioDTO) (*dto.SocioDTO, error) {
	socio, err := s.socioRepository.CreateSocio(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear el socio", zap.Error(err))
		return nil, err
	}
	s.logger.Info("socio creado", zap.Int("id", socio.ID))
	return socio, nil
}

func (s *SocioService) UpdateSocio(ctx context.Context, id int, payload dto.UpdateSocioDTO) (*dto.SocioDTO, error) {
	if err := s.socioRepository.UpdateSocio(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.socioRepository.FindSocio(ctx, id)
}

func (s *SocioService) DeleteSocio(ctx context.Context, id int) error {
	return s.socioRepository.DeleteSocio(ctx, id)
}
