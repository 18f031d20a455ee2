package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/internal/search"
	"pilarum/pkg/types"
)

// FinanzasService cubre la pantalla de movimientos: la búsqueda por
// categoría, los selectores dependientes y el alta manual de apuntes.
type FinanzasService struct {
	movimientoRepository repositories.MovimientoRepositoryInterface
	socioRepository      repositories.SocioRepositoryInterface
	proyectoRepository   repositories.ProyectoRepositoryInterface
	maquinariaRepository repositories.MaquinariaRepositoryInterface
	ordenRepository      repositories.OrdenCompraRepositoryInterface
	logger               *zap.Logger
}

func NewFinanzasService(
	movimientoRepository repositories.MovimientoRepositoryInterface,
	socioRepository repositories.SocioRepositoryInterface,
	proyectoRepository repositories.ProyectoRepositoryInterface,
	maquinariaRepository repositories.MaquinariaRepositoryInterface,
	ordenRepository repositories.OrdenCompraRepositoryInterface,
	logger *zap.Logger,
) *FinanzasService {
	return &FinanzasService{
		movimientoRepository: movimientoRepository,
		socioRepository:      socioRepository,
		proyectoRepository:   proyectoRepository,
		maquinariaRepository: maquinariaRepository,
		ordenRepository:      ordenRepository,
		logger:               logger,
	}
}

// SearchMovimientos ejecuta la búsqueda y devuelve la página junto con el
// total de filas y la suma de montos de todo el resultado.
func (s *FinanzasService) SearchMovimientos(ctx context.Context, state search.FilterState, filter types.Filter) (*dto.MovimientosResultDTO, uint64, error) {
	movimientos, total, totalMonto, err := s.movimientoRepository.SearchMovimientos(ctx, state, filter)
	if err != nil {
		s.logger.Error("error en la búsqueda de movimientos", zap.Error(err))
		return nil, 0, err
	}

	return &dto.MovimientosResultDTO{Movimientos: movimientos, TotalMonto: totalMonto}, total, nil
}

func (s *FinanzasService) CreateMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO) (*dto.MovimientoDTO, error) {
	movimiento, err := s.movimientoRepository.CreateMovimiento(ctx, payload)
	if err != nil {
		s.logger.Error("error al registrar el movimiento", zap.Error(err))
		return nil, err
	}
	return movimiento, nil
}

func (s *FinanzasService) DeleteMovimiento(ctx context.Context, id int) error {
	return s.movimientoRepository.DeleteMovimiento(ctx, id)
}

// Los tres métodos siguientes alimentan los selectores dependientes del
// formulario de búsqueda.

func (s *FinanzasService) GetEmpresas(ctx context.Context) ([]dto.ShortSocioDTO, error) {
	return s.socioRepository.GetSociosAll(ctx)
}

func (s *FinanzasService) GetProyectosDeEmpresa(ctx context.Context, socioID int) ([]dto.ShortProyectoDTO, error) {
	return s.proyectoRepository.GetProyectosBySocio(ctx, socioID)
}

func (s *FinanzasService) GetEquipos(ctx context.Context) ([]dto.ShortMaquinariaDTO, error) {
	return s.maquinariaRepository.GetEquiposAll(ctx)
}

func (s *FinanzasService) GetOrdenesCompra(ctx context.Context) ([]dto.ShortOrdenCompraDTO, error) {
	return s.ordenRepository.GetOrdenesCompraAll(ctx)
}
