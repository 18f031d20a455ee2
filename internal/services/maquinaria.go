package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
)

type MaquinariaService struct {
	maquinariaRepository repositories.MaquinariaRepositoryInterface
	logger               *zap.Logger
}

func NewMaquinariaService(maquinariaRepository repositories.MaquinariaRepositoryInterface, logger *zap.Logger) *MaquinariaService {
	return &MaquinariaService{
		maquinariaRepository: maquinariaRepository,
		logger:               logger,
	}
}

func (s *MaquinariaService) GetMaquinaria(ctx context.Context, filter types.Filter) ([]dto.MaquinariaDTO, uint64, error) {
	return s.maquinariaRepository.GetMaquinaria(ctx, filter)
}

func (s *MaquinariaService) GetEquiposAll(ctx context.Context) ([]dto.ShortMaquinariaDTO, error) {
	return s.maquinariaRepository.GetEquiposAll(ctx)
}

func (s *MaquinariaService) FindMaquina(ctx context.Context, id int) (*dto.MaquinariaDTO, error) {
	return s.maquinariaRepository.FindMaquina(ctx, id)
}

func (s *MaquinariaService) CreateMaquina(ctx context.Context, payload dto.CreateMaquinariaDTO) (*dto.MaquinariaDTO, error) {
	maquina, err := s.maquinariaRepository.CreateMaquina(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear la máquina", zap.Error(err))
		return nil, err
	}
	s.logger.Info("máquina creada", zap.Int("id", maquina.ID))
	return maquina, nil
}

func (s *MaquinariaService) UpdateMaquina(ctx context.Context, id int, payload dto.UpdateMaquinariaDTO) (*dto.MaquinariaDTO, error) {
	if err := s.maquinariaRepository.UpdateMaquina(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.maquinariaRepository.FindMaquina(ctx, id)
}

func (s *MaquinariaService) DeleteMaquina(ctx context.Context, id int) error {
	return s.maquinariaRepository.DeleteMaquina(ctx, id)
}
