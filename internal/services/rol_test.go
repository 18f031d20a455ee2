package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pilarum/internal/authz"
	"pilarum/internal/dto"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

type fakeRolRepo struct {
	permisos map[int][]int
	replaced []int
	missing  bool
}

func (f *fakeRolRepo) GetRoles(ctx context.Context, filter types.Filter) ([]dto.RolDTO, uint64, error) {
	return nil, 0, nil
}

func (f *fakeRolRepo) FindRol(ctx context.Context, id int) (*dto.RolDTO, error) {
	if f.missing {
		return nil, apperrors.ErrNotFound
	}
	return &dto.RolDTO{ID: id, Permisos: f.permisos[id]}, nil
}

func (f *fakeRolRepo) CreateRol(ctx context.Context, payload dto.CreateRolDTO) (*dto.RolDTO, error) {
	return &dto.RolDTO{ID: 1, Nombre: payload.Nombre}, nil
}

func (f *fakeRolRepo) UpdateRol(ctx context.Context, id int, payload dto.UpdateRolDTO) error {
	return nil
}

func (f *fakeRolRepo) DeleteRol(ctx context.Context, id int) error { return nil }

func (f *fakeRolRepo) GetPermissionIDsByRol(ctx context.Context, rolID int) ([]int, error) {
	return f.permisos[rolID], nil
}

func (f *fakeRolRepo) ReplacePermissions(ctx context.Context, rolID int, permissionIDs []int) error {
	if f.missing {
		return apperrors.ErrNotFound
	}
	f.replaced = permissionIDs
	if f.permisos == nil {
		f.permisos = map[int][]int{}
	}
	f.permisos[rolID] = permissionIDs
	return nil
}

type fakePermService struct {
	invalidated []int
}

func (f *fakePermService) GetRolePermissionIDs(ctx context.Context, rolID int) ([]int, error) {
	return nil, nil
}

func (f *fakePermService) InvalidateRolePermissionsCache(ctx context.Context, rolID int) error {
	f.invalidated = append(f.invalidated, rolID)
	return nil
}

func TestAssignPermisosResuelveEtiquetas(t *testing.T) {
	repo := &fakeRolRepo{}
	perms := &fakePermService{}
	svc := NewRolService(repo, perms, zap.NewNop())

	result, err := svc.AssignPermisos(context.Background(), 4, dto.AssignPermisosDTO{
		Seleccion: map[string][]string{
			"socios":    {"Ver socios", "Crear socios"},
			"proyectos": {"Ver proyectos"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{authz.SociosVer, authz.SociosCrear, authz.ProyectosVer}, result.Permisos)
	assert.Empty(t, result.SinCatalogar)
	assert.Equal(t, result.Permisos, repo.replaced)
	assert.Equal(t, []int{4}, perms.invalidated, "la caché del rol debe invalidarse tras asignar")
}

func TestAssignPermisosEtiquetasDesconocidas(t *testing.T) {
	repo := &fakeRolRepo{}
	svc := NewRolService(repo, &fakePermService{}, zap.NewNop())

	result, err := svc.AssignPermisos(context.Background(), 2, dto.AssignPermisosDTO{
		Seleccion: map[string][]string{
			"socios":      {"Ver socios", "Etiqueta inventada"},
			"inexistente": {"Lo que sea"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{authz.SociosVer}, result.Permisos)
	assert.ElementsMatch(t, []string{"Etiqueta inventada", "Lo que sea"}, result.SinCatalogar)
}

func TestAssignPermisosRolInexistente(t *testing.T) {
	repo := &fakeRolRepo{missing: true}
	perms := &fakePermService{}
	svc := NewRolService(repo, perms, zap.NewNop())

	_, err := svc.AssignPermisos(context.Background(), 99, dto.AssignPermisosDTO{
		Seleccion: map[string][]string{"socios": {"Ver socios"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, perms.invalidated)
}
