package services

import (
	"context"

	"go.uber.org/zap"

	"pilarum/internal/authz"
	"pilarum/internal/dto"
	"pilarum/internal/repositories"
	"pilarum/pkg/types"
)

type RolService struct {
	rolRepository repositories.RolRepositoryInterface
	permService   AuthPermissionServiceInterface
	logger        *zap.Logger
}

func NewRolService(
	rolRepository repositories.RolRepositoryInterface,
	permService AuthPermissionServiceInterface,
	logger *zap.Logger,
) *RolService {
	return &RolService{
		rolRepository: rolRepository,
		permService:   permService,
		logger:        logger,
	}
}

func (s *RolService) GetRoles(ctx context.Context, filter types.Filter) ([]dto.RolDTO, uint64, error) {
	return s.rolRepository.GetRoles(ctx, filter)
}

func (s *RolService) FindRol(ctx context.Context, id int) (*dto.RolDTO, error) {
	return s.rolRepository.FindRol(ctx, id)
}

// GetCatalogoPermisos expone el catálogo estático agrupado por subgrupo, con
// el que el front pinta la pantalla de roles.
func (s *RolService) GetCatalogoPermisos(ctx context.Context) []dto.PermisoDTO {
	catalogo := []dto.PermisoDTO{}
	for subgrupo, etiquetas := range authz.Catalogo {
		for etiqueta, id := range etiquetas {
			catalogo = append(catalogo, dto.PermisoDTO{ID: id, Etiqueta: etiqueta, Subgrupo: subgrupo})
		}
	}
	return catalogo
}

func (s *RolService) CreateRol(ctx context.Context, payload dto.CreateRolDTO) (*dto.RolDTO, error) {
	rol, err := s.rolRepository.CreateRol(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear el rol", zap.Error(err))
		return nil, err
	}
	s.logger.Info("rol creado", zap.Int("id", rol.ID), zap.String("nombre", rol.Nombre))
	return rol, nil
}

func (s *RolService) UpdateRol(ctx context.Context, id int, payload dto.UpdateRolDTO) (*dto.RolDTO, error) {
	if err := s.rolRepository.UpdateRol(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.rolRepository.FindRol(ctx, id)
}

// AssignPermisos traduce la selección de la pantalla de roles (subgrupo →
// etiquetas) a IDs del catálogo, persiste el conjunto e invalida la caché
// del rol. Las etiquetas que no existen en el catálogo se devuelven en la
// respuesta en lugar de fallar toda la asignación.
func (s *RolService) AssignPermisos(ctx context.Context, rolID int, payload dto.AssignPermisosDTO) (*dto.AssignPermisosResultDTO, error) {
	ids, sinCatalogar := authz.ResolveSelection(payload.Seleccion)
	if len(sinCatalogar) > 0 {
		s.logger.Warn("selección con etiquetas fuera de catálogo",
			zap.Int("rol_id", rolID),
			zap.Strings("etiquetas", sinCatalogar),
		)
	}

	if err := s.rolRepository.ReplacePermissions(ctx, rolID, ids); err != nil {
		return nil, err
	}

	if err := s.permService.InvalidateRolePermissionsCache(ctx, rolID); err != nil {
		s.logger.Error("no se pudo invalidar la caché de permisos del rol", zap.Int("rol_id", rolID), zap.Error(err))
	}

	return &dto.AssignPermisosResultDTO{Permisos: ids, SinCatalogar: sinCatalogar}, nil
}

func (s *RolService) DeleteRol(ctx context.Context, id int) error {
	if err := s.rolRepository.DeleteRol(ctx, id); err != nil {
		return err
	}
	if err := s.permService.InvalidateRolePermissionsCache(ctx, id); err != nil {
		s.logger.Error("no se pudo invalidar la caché de permisos del rol", zap.Int("rol_id", id), zap.Error(err))
	}
	return nil
}
