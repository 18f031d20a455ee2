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
	"pilarum/internal/entities"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

const usuarioTable = "usuarios"

var usuarioFilterColumns = map[string]string{
	"rol_id": "u.rol_id",
	"activo": "u.activo",
}

var usuarioSearchColumns = []string{"u.nombre", "u.email"}

type UsuarioRepositoryInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) ([]dto.UsuarioDTO, uint64, error)
	GetUsuariosAll(ctx context.Context) ([]dto.ShortUsuarioDTO, error)
	FindUsuario(ctx context.Context, id int) (*dto.UsuarioDTO, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO, passwordHash string) (*dto.UsuarioDTO, error)
	UpdateUsuario(ctx context.Context, id int, payload dto.UpdateUsuarioDTO) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	DeleteUsuario(ctx context.Context, id int) error
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUsuarioRepository(storage *pgxpool.Pool, logger *zap.Logger) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage, logger: logger}
}

func usuarioBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"u.id", "u.nombre", "u.email", "u.activo", "u.created_at", "u.updated_at",
		"r.id", "r.nombre",
	).
		From(usuarioTable + " u").
		Join("roles r ON r.id = u.rol_id")
}

func scanUsuario(row pgx.Row) (*dto.UsuarioDTO, error) {
	var u dto.UsuarioDTO
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.Activo, &createdAt, &updatedAt,
		&u.Rol.ID, &u.Rol.Nombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	u.CreatedAt = createdAt.Format(dto.TimeLayout)
	u.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &u, nil
}

func (r *UsuarioRepository) GetUsuarios(ctx context.Context, filter types.Filter) ([]dto.UsuarioDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(usuarioTable+" u"),
		filter, usuarioFilterColumns, usuarioSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.UsuarioDTO{}, 0, nil
	}

	builder := applyListConditions(usuarioBaseSelect(), filter, usuarioFilterColumns, usuarioSearchColumns)
	builder = applySort(builder, filter, map[string]string{"nombre": "u.nombre", "created_at": "u.created_at"}, "u.id")
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

	usuarios := []dto.UsuarioDTO{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, 0, err
		}
		usuarios = append(usuarios, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return usuarios, total, nil
}

func (r *UsuarioRepository) GetUsuariosAll(ctx context.Context) ([]dto.ShortUsuarioDTO, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, nombre FROM usuarios WHERE activo = true ORDER BY nombre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[dto.ShortUsuarioDTO])
}

func (r *UsuarioRepository) FindUsuario(ctx context.Context, id int) (*dto.UsuarioDTO, error) {
	query, args, err := usuarioBaseSelect().Where(sq.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUsuario(r.storage.QueryRow(ctx, query, args...))
}

// FindByEmail devuelve la entidad completa, hash incluido, para el login.
func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var u entities.Usuario
	query := `
		SELECT id, nombre, email, password_hash, rol_id, activo, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`
	err := r.storage.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.RolID, &u.Activo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO, passwordHash string) (*dto.UsuarioDTO, error) {
	var id int
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		payload.Nombre, payload.Email, passwordHash, payload.RolID,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindUsuario(ctx, id)
}

func (r *UsuarioRepository) UpdateUsuario(ctx context.Context, id int, payload dto.UpdateUsuarioDTO) error {
	builder := psql.Update(usuarioTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.Email.Valid {
		builder = builder.Set("email", payload.Email.String)
	}
	if payload.RolID.Valid {
		builder = builder.Set("rol_id", payload.RolID.Int)
	}
	if payload.Activo.Valid {
		builder = builder.Set("activo", payload.Activo.Bool)
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

func (r *UsuarioRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE usuarios SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		passwordHash, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) DeleteUsuario(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
