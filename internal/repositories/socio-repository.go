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

const socioTable = "socios"

var socioColumns = []string{"id", "nombre", "cif", "direccion", "telefono", "email", "activo", "created_at", "updated_at"}

var socioFilterColumns = map[string]string{
	"activo": "activo",
}

var socioSearchColumns = []string{"nombre", "cif", "email"}

type SocioRepositoryInterface interface {
	GetSocios(ctx context.Context, filter types.Filter) ([]dto.SocioDTO, uint64, error)
	GetSociosAll(ctx context.Context) ([]dto.ShortSocioDTO, error)
	FindSocio(ctx context.Context, id int) (*dto.SocioDTO, error)
	CreateSocio(ctx context.Context, payload dto.CreateSocioDTO) (*dto.SocioDTO, error)
	UpdateSocio(ctx context.Context, id int, payload dto.UpdateSocioDTO) error
	DeleteSocio(ctx context.Context, id int) error
}

type SocioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSocioRepository(storage *pgxpool.Pool, logger *zap.Logger) SocioRepositoryInterface {
	return &SocioRepository{storage: storage, logger: logger}
}

func scanSocio(row pgx.Row) (*dto.SocioDTO, error) {
	var s dto.SocioDTO
	var createdAt, updatedAt time.Time

	err := row.Scan(&s.ID, &s.Nombre, &s.CIF, &s.Direccion, &s.Telefono, &s.Email, &s.Activo, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	s.CreatedAt = createdAt.Format(dto.TimeLayout)
	s.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &s, nil
}

func (r *SocioRepository) GetSocios(ctx context.Context, filter types.Filter) ([]dto.SocioDTO, uint64, error) {
	countBuilder := applyListConditions(psql.Select("COUNT(*)").From(socioTable), filter, socioFilterColumns, socioSearchColumns)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.SocioDTO{}, 0, nil
	}

	builder := applyListConditions(psql.Select(socioColumns...).From(socioTable), filter, socioFilterColumns, socioSearchColumns)
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

	socios := []dto.SocioDTO{}
	for rows.Next() {
		s, err := scanSocio(rows)
		if err != nil {
			return nil, 0, err
		}
		socios = append(socios, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return socios, total, nil
}

func (r *SocioRepository) GetSociosAll(ctx context.Context) ([]dto.ShortSocioDTO, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, nombre FROM socios WHERE activo = true ORDER BY nombre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[dto.ShortSocioDTO])
}

func (r *SocioRepository) FindSocio(ctx context.Context, id int) (*dto.SocioDTO, error) {
	query, args, err := psql.Select(socioColumns...).From(socioTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSocio(r.storage.QueryRow(ctx, query, args...))
}

func (r *SocioRepository) CreateSocio(ctx context.Context, payload dto.CreateSocioDTO) (*dto.SocioDTO, error) {
	query, args, err := psql.Insert(socioTable).
		Columns("nombre", "cif", "direccion", "telefono", "email").
		Values(payload.Nombre, payload.CIF, payload.Direccion, payload.Telefono, payload.Email).
		Suffix("RETURNING id, nombre, cif, direccion, telefono, email, activo, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanSocio(r.storage.QueryRow(ctx, query, args...))
}

func (r *SocioRepository) UpdateSocio(ctx context.Context, id int, payload dto.UpdateSocioDTO) error {
	builder := psql.Update(socioTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.CIF.Valid {
		builder = builder.Set("cif", payload.CIF.String)
	}
	if payload.Direccion.Valid {
		builder = builder.Set("direccion", payload.Direccion.String)
	}
	if payload.Telefono.Valid {
		builder = builder.Set("telefono", payload.Telefono.String)
	}
	if payload.Email.Valid {
		builder = builder.Set("email", payload.Email.String)
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

func (r *SocioRepository) DeleteSocio(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM socios WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
