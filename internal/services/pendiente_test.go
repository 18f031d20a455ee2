package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/entities"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

type fakePendienteRepo struct {
	estado string
}

func (f *fakePendienteRepo) GetPendientes(ctx context.Context, filter types.Filter) ([]dto.PendienteDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakePendienteRepo) FindPendiente(ctx context.Context, id int) (*dto.PendienteDTO, error) {
	return &dto.PendienteDTO{ID: id, Estado: f.estado}, nil
}

func (f *fakePendienteRepo) CreatePendiente(ctx context.Context, payload dto.CreatePendienteDTO) (*dto.PendienteDTO, error) {
	return nil, nil
}

func (f *fakePendienteRepo) UpdatePendiente(ctx context.Context, id int, payload dto.UpdatePendienteDTO) error {
	return nil
}

func (f *fakePendienteRepo) CambiarEstado(ctx context.Context, id int, estado string) error {
	f.estado = estado
	return nil
}

func (f *fakePendienteRepo) DeletePendiente(ctx context.Context, id int) error { return nil }

func TestCambiarEstadoAvance(t *testing.T) {
	repo := &fakePendienteRepo{estado: entities.PendienteNoIniciado}
	svc := NewPendienteService(repo, zap.NewNop())

	pendiente, err := svc.CambiarEstado(context.Background(), 1, entities.PendienteActivo)
	require.NoError(t, err)
	assert.Equal(t, entities.PendienteActivo, pendiente.Estado)

	pendiente, err = svc.CambiarEstado(context.Background(), 1, entities.PendienteCompletado)
	require.NoError(t, err)
	assert.Equal(t, entities.PendienteCompletado, pendiente.Estado)
}

func TestCambiarEstadoCompletadoEsTerminal(t *testing.T) {
	repo := &fakePendienteRepo{estado: entities.PendienteCompletado}
	svc := NewPendienteService(repo, zap.NewNop())

	_, err := svc.CambiarEstado(context.Background(), 1, entities.PendienteActivo)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, entities.PendienteCompletado, repo.estado, "el estado no debe cambiar")
}

func TestCambiarEstadoMismoEstadoEsNoOp(t *testing.T) {
	repo := &fakePendienteRepo{estado: entities.PendienteActivo}
	svc := NewPendienteService(repo, zap.NewNop())

	pendiente, err := svc.CambiarEstado(context.Background(), 1, entities.PendienteActivo)
	require.NoError(t, err)
	assert.Equal(t, entities.PendienteActivo, pendiente.Estado)
}
