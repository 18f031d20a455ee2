package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/entities"
	"pilarum/internal/repositories"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

// transicionesPendiente define el avance permitido de una tarea. Completado
// es terminal.
var transicionesPendiente = map[string][]string{
	entities.PendienteNoIniciado: {entities.PendienteActivo, entities.PendienteCompletado},
	entities.PendienteActivo:     {entities.PendienteCompletado, entities.PendienteNoIniciado},
	entities.PendienteCompletado: {},
}

type PendienteService struct {
	pendienteRepository repositories.PendienteRepositoryInterface
	logger              *zap.Logger
}

func NewPendienteService(pendienteRepository repositories.PendienteRepositoryInterface, logger *zap.Logger) *PendienteService {
	return &PendienteService{
		pendienteRepository: pendienteRepository,
		logger:              logger,
	}
}

func (s *PendienteService) GetPendientes(ctx context.Context, filter types.Filter) ([]dto.PendienteDTO, uint64, error) {
	return s.pendienteRepository.GetPendientes(ctx, filter)
}

func (s *PendienteService) FindPendiente(ctx context.Context, id int) (*dto.PendienteDTO, error) {
	return s.pendienteRepository.FindPendiente(ctx, id)
}

func (s *PendienteService) CreatePendiente(ctx context.Context, payload dto.CreatePendienteDTO) (*dto.PendienteDTO, error) {
	pendiente, err := s.pendienteRepository.CreatePendiente(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear la tarea", zap.Error(err))
		return nil, err
	}
	return pendiente, nil
}

func (s *PendienteService) UpdatePendiente(ctx context.Context, id int, payload dto.UpdatePendienteDTO) (*dto.PendienteDTO, error) {
	if err := s.pendienteRepository.UpdatePendiente(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.pendienteRepository.FindPendiente(ctx, id)
}

// CambiarEstado valida la transición antes de aplicarla.
func (s *PendienteService) CambiarEstado(ctx context.Context, id int, estado string) (*dto.PendienteDTO, error) {
	pendiente, err := s.pendienteRepository.FindPendiente(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transicionValida(pendiente.Estado, estado) {
		return nil, apperrors.NewHttpError(400, "Transición de estado no permitida", apperrors.ErrBadRequest, map[string]interface{}{
			"desde": pendiente.Estado,
			"hacia": estado,
		})
	}

	if err := s.pendienteRepository.CambiarEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	s.logger.Info("tarea cambiada de estado", zap.Int("id", id), zap.String("estado", estado))
	return s.pendienteRepository.FindPendiente(ctx, id)
}

func transicionValida(desde, hacia string) bool {
	if desde == hacia {
		return true
	}
	for _, permitido := range transicionesPendiente[desde] {
		if permitido == hacia {
			return true
		}
	}
	return false
}

func (s *PendienteService) DeletePendiente(ctx context.Context, id int) error {
	return s.pendienteRepository.DeletePendiente(ctx, id)
}
