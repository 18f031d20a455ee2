package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

type InventarioService struct {
	inventarioRepository repositories.InventarioRepositoryInterface
	logger               *zap.Logger
}

func NewInventarioService(inventarioRepository repositories.InventarioRepositoryInterface, logger *zap.Logger) *InventarioService {
	return &InventarioService{
		inventarioRepository: inventarioRepository,
		logger:               logger,
	}
}

func (s *InventarioService) GetMateriales(ctx context.Context, filter types.Filter) ([]dto.MaterialDTO, uint64, error) {
	return s.inventarioRepository.GetMateriales(ctx, filter)
}

func (s *InventarioService) FindMaterial(ctx context.Context, id int) (*dto.MaterialDTO, error) {
	return s.inventarioRepository.FindMaterial(ctx, id)
}

func (s *InventarioService) CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*dto.MaterialDTO, error) {
	material, err := s.inventarioRepository.CreateMaterial(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear el material", zap.Error(err))
		return nil, err
	}
	s.logger.Info("material creado", zap.Int("id", material.ID))
	return material, nil
}

func (s *InventarioService) UpdateMaterial(ctx context.Context, id int, payload dto.UpdateMaterialDTO) (*dto.MaterialDTO, error) {
	if err := s.inventarioRepository.UpdateMaterial(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.inventarioRepository.FindMaterial(ctx, id)
}

// AjustarCantidad suma o resta stock. No se permite dejar la cantidad en
// negativo.
func (s *InventarioService) AjustarCantidad(ctx context.Context, id int, delta float64) (*dto.MaterialDTO, error) {
	material, err := s.inventarioRepository.FindMaterial(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.Cantidad+delta < 0 {
		return nil, apperrors.NewHttpError(400, "El ajuste dejaría el stock en negativo", apperrors.ErrBadRequest, nil)
	}

	if err := s.inventarioRepository.AjustarCantidad(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.inventarioRepository.FindMaterial(ctx, id)
}

func (s *InventarioService) DeleteMaterial(ctx context.Context, id int) error {
	return s.inventarioRepository.DeleteMaterial(ctx, id)
}
