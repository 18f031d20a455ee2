package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

const (
	rolTable        = "roles"
	rolPermisoTable = "rol_permisos"
)

var rolSearchColumns = []string{"nombre", "descripcion"}

type RolRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]dto.RolDTO, uint64, error)
	FindRol(ctx context.Context, id int) (*dto.RolDTO, error)
	CreateRol(ctx context.Context, payload dto.CreateRolDTO) (*dto.RolDTO, error)
	UpdateRol(ctx context.Context, id int, payload dto.UpdateRolDTO) error
	DeleteRol(ctx context.Context, id int) error
	GetPermissionIDsByRol(ctx context.Context, rolID int) ([]int, error)
	ReplacePermissions(ctx context.Context, rolID int, permissionIDs []int) error
}

type RolRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRolRepository(storage *pgxpool.Pool, logger *zap.Logger) RolRepositoryInterface {
	return &RolRepository{storage: storage, logger: logger}
}

func scanRol(row pgx.Row) (*dto.RolDTO, error) {
	var r dto.RolDTO
	var createdAt, updatedAt time.Time

	err := row.Scan(&r.ID, &r.Nombre, &r.Descripcion, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	r.CreatedAt = createdAt.Format(dto.TimeLayout)
	r.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &r, nil
}

func (r *RolRepository) GetRoles(ctx context.Context, filter types.Filter) ([]dto.RolDTO, uint64, error) {
	countBuilder := applyListConditions(psql.Select("COUNT(*)").From(rolTable), filter, nil, rolSearchColumns)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.RolDTO{}, 0, nil
	}

	builder := applyListConditions(
		psql.Select("id", "nombre", "descripcion", "created_at", "updated_at").From(rolTable),
		filter, nil, rolSearchColumns,
	)
	builder = applySort(builder, filter, map[string]string{"nombre": "nombre", "created_at": "created_at"}, "id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	roles := []dto.RolDTO{}
	for rows.Next() {
		rol, err := scanRol(rows)
		if err != nil {
			return nil, 0, err
		}
		roles = append(roles, *rol)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range roles {
		permisos, err := r.GetPermissionIDsByRol(ctx, roles[i].ID)
		if err != nil {
			return nil, 0, err
		}
		roles[i].Permisos = permisos
	}

	return roles, total, nil
}

func (r *RolRepository) FindRol(ctx context.Context, id int) (*dto.RolDTO, error) {
	query, args, err := psql.Select("id", "nombre", "descripcion", "created_at", "updated_at").
		From(rolTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	rol, err := scanRol(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	rol.Permisos, err = r.GetPermissionIDsByRol(ctx, id)
	if err != nil {
		return nil, err
	}
	return rol, nil
}

func (r *RolRepository) CreateRol(ctx context.Context, payload dto.CreateRolDTO) (*dto.RolDTO, error) {
	query := `
		INSERT INTO roles (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, nombre, descripcion, created_at, updated_at
	`
	rol, err := scanRol(r.storage.QueryRow(ctx, query, payload.Nombre, payload.Descripcion))
	if err != nil {
		return nil, err
	}
	rol.Permisos = []int{}
	return rol, nil
}

func (r *RolRepository) UpdateRol(ctx context.Context, id int, payload dto.UpdateRolDTO) error {
	builder := psql.Update(rolTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.Descripcion.Valid {
		builder = builder.Set("descripcion", payload.Descripcion.String)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RolRepository) DeleteRol(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM roles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RolRepository) GetPermissionIDsByRol(ctx context.Context, rolID int) ([]int, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT permiso_id FROM rol_permisos WHERE rol_id = $1 ORDER BY permiso_id", rolID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplacePermissions sustituye atómicamente el conjunto de permisos del rol.
func (r *RolRepository) ReplacePermissions(ctx context.Context, rolID int, permissionIDs []int) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)", rolID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, "DELETE FROM rol_permisos WHERE rol_id = $1", rolID); err != nil {
		return err
	}

	if len(permissionIDs) > 0 {
		builder := psql.Insert(rolPermisoTable).Columns("rol_id", "permiso_id")
		for _, id := range permissionIDs {
			builder = builder.Values(rolID, id)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
