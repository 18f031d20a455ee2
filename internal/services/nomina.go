package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
)

type NominaService struct {
	nominaRepository  repositories.NominaRepositoryInterface
	usuarioRepository repositories.UsuarioRepositoryInterface
	logger            *zap.Logger
}

func NewNominaService(
	nominaRepository repositories.NominaRepositoryInterface,
	usuarioRepository repositories.UsuarioRepositoryInterface,
	logger *zap.Logger,
) *NominaService {
	return &NominaService{
		nominaRepository:  nominaRepository,
		usuarioRepository: usuarioRepository,
		logger:            logger,
	}
}

func (s *NominaService) GetNominas(ctx context.Context, filter types.Filter) ([]dto.NominaDTO, uint64, error) {
	return s.nominaRepository.GetNominas(ctx, filter)
}

func (s *NominaService) FindNomina(ctx context.Context, id int) (*dto.NominaDTO, error) {
	return s.nominaRepository.FindNomina(ctx, id)
}

func (s *NominaService) CreateNomina(ctx context.Context, payload dto.CreateNominaDTO) (*dto.NominaDTO, error) {
	if _, err := s.usuarioRepository.FindUsuario(ctx, payload.EmpleadoID); err != nil {
		return nil, err
	}

	total := totalNomina(payload.SalarioBase, payload.HorasExtra, payload.Deducciones)
	nomina, err := s.nominaRepository.CreateNomina(ctx, payload, total)
	if err != nil {
		s.logger.Error("error al crear la nómina", zap.Error(err))
		return nil, err
	}
	s.logger.Info("nómina creada", zap.Int("id", nomina.ID), zap.String("periodo", nomina.Periodo))
	return nomina, nil
}

func (s *NominaService) UpdateNomina(ctx context.Context, id int, payload dto.UpdateNominaDTO) (*dto.NominaDTO, error) {
	actual, err := s.nominaRepository.FindNomina(ctx, id)
	if err != nil {
		return nil, err
	}

	salario := actual.SalarioBase
	horas := actual.HorasExtra
	deducciones := actual.Deducciones
	if payload.SalarioBase.Valid {
		salario = payload.SalarioBase.Float64
	}
	if payload.HorasExtra.Valid {
		horas = payload.HorasExtra.Float64
	}
	if payload.Deducciones.Valid {
		deducciones = payload.Deducciones.Float64
	}

	total := null.Float64From(totalNomina(salario, horas, deducciones))
	if err := s.nominaRepository.UpdateNomina(ctx, id, payload, total); err != nil {
		return nil, err
	}
	return s.nominaRepository.FindNomina(ctx, id)
}

func (s *NominaService) MarcarPagada(ctx context.Context, id int) (*dto.NominaDTO, error) {
	if err := s.nominaRepository.MarcarPagada(ctx, id); err != nil {
		return nil, err
	}
	return s.nominaRepository.FindNomina(ctx, id)
}

func (s *NominaService) DeleteNomina(ctx context.Context, id int) error {
	return s.nominaRepository.DeleteNomina(ctx, id)
}

// totalNomina recalcula el total en el servidor; nunca se acepta del cliente.
func totalNomina(salarioBase, horasExtra, deducciones float64) float64 {
	return salarioBase + horasExtra - deducciones
}
