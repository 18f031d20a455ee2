package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pilarum/internal/repositories"
)

type AuthPermissionServiceInterface interface {
	GetRolePermissionIDs(ctx context.Context, rolID int) ([]int, error)
	InvalidateRolePermissionsCache(ctx context.Context, rolID int) error
}

// AuthPermissionService resuelve los permisos de un rol con caché en Redis.
// Se consulta en cada petición autenticada, por eso la caché.
type AuthPermissionService struct {
	rolRepository repositories.RolRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	logger        *zap.Logger
	cacheTTL      time.Duration
}

func NewAuthPermissionService(
	rolRepository repositories.RolRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		rolRepository: rolRepository,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

func permisosCacheKey(rolID int) string {
	return fmt.Sprintf("auth:permisos:rol:%d", rolID)
}

func (s *AuthPermissionService) GetRolePermissionIDs(ctx context.Context, rolID int) ([]int, error) {
	cacheKey := permisosCacheKey(rolID)

	cached, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		var permisos []int
		if err := json.Unmarshal([]byte(cached), &permisos); err == nil {
			return permisos, nil
		}
		s.logger.Warn("entrada de caché de permisos corrupta", zap.String("key", cacheKey))
	}

	permisos, err := s.rolRepository.GetPermissionIDsByRol(ctx, rolID)
	if err != nil {
		s.logger.Error("no se pudieron cargar los permisos del rol", zap.Int("rol_id", rolID), zap.Error(err))
		return nil, err
	}

	if data, err := json.Marshal(permisos); err == nil {
		if errSet := s.cacheRepo.Set(ctx, cacheKey, string(data), s.cacheTTL); errSet != nil {
			s.logger.Error("no se pudo cachear los permisos del rol", zap.Int("rol_id", rolID), zap.Error(errSet))
		}
	}

	return permisos, nil
}

func (s *AuthPermissionService) InvalidateRolePermissionsCache(ctx context.Context, rolID int) error {
	return s.cacheRepo.Del(ctx, permisosCacheKey(rolID))
}
