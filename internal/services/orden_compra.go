package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
)

type OrdenCompraService struct {
	ordenCompraRepository repositories.OrdenCompraRepositoryInterface
	logger                *zap.Logger
}

func NewOrdenCompraService(ordenCompraRepository repositories.OrdenCompraRepositoryInterface, logger *zap.Logger) *OrdenCompraService {
	return &OrdenCompraService{
		ordenCompraRepository: ordenCompraRepository,
		logger:                logger,
	}
}

func (s *OrdenCompraService) GetOrdenesCompra(ctx context.Context, filter types.Filter) ([]dto.OrdenCompraDTO, uint64, error) {
	return s.ordenCompraRepository.GetOrdenesCompra(ctx, filter)
}

func (s *OrdenCompraService) GetOrdenesCompraAll(ctx context.Context) ([]dto.ShortOrdenCompraDTO, error) {
	return s.ordenCompraRepository.GetOrdenesCompraAll(ctx)
}

func (s *OrdenCompraService) FindOrdenCompra(ctx context.Context, id int) (*dto.OrdenCompraDTO, error) {
	return s.ordenCompraRepository.FindOrdenCompra(ctx, id)
}

func (s *OrdenCompraService) CreateOrdenCompra(ctx context.Context, payload dto.CreateOrdenCompraDTO) (*dto.OrdenCompraDTO, error) {
	orden, err := s.ordenCompraRepository.CreateOrdenCompra(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear la orden de compra", zap.Error(err))
		return nil, err
	}
	s.logger.Info("orden de compra creada", zap.Int("id", orden.ID), zap.String("numero_factura", orden.NumeroFactura))
	return orden, nil
}

func (s *OrdenCompraService) UpdateOrdenCompra(ctx context.Context, id int, payload dto.UpdateOrdenCompraDTO) (*dto.OrdenCompraDTO, error) {
	if err := s.ordenCompraRepository.UpdateOrdenCompra(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.ordenCompraRepository.FindOrdenCompra(ctx, id)
}

func (s *OrdenCompraService) DeleteOrdenCompra(ctx context.Context, id int) error {
	return s.ordenCompraRepository.DeleteOrdenCompra(ctx, id)
}
