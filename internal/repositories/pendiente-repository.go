package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

const pendienteTable = "pendientes"

var pendienteFilterColumns = map[string]string{
	"estado":      "t.estado",
	"proyecto_id": "t.proyecto_id",
	"asignado_a":  "t.asignado_a",
}

var pendienteSearchColumns = []string{"t.titulo", "t.descripcion"}

type PendienteRepositoryInterface interface {
	GetPendientes(ctx context.Context, filter types.Filter) ([]dto.PendienteDTO, uint64, error)
	FindPendiente(ctx context.Context, id int) (*dto.PendienteDTO, error)
	CreatePendiente(ctx context.Context, payload dto.CreatePendienteDTO) (*dto.PendienteDTO, error)
	UpdatePendiente(ctx context.Context, id int, payload dto.UpdatePendienteDTO) error
	CambiarEstado(ctx context.Context, id int, estado string) error
	DeletePendiente(ctx context.Context, id int) error
}

type PendienteRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPendienteRepository(storage *pgxpool.Pool, logger *zap.Logger) PendienteRepositoryInterface {
	return &PendienteRepository{storage: storage, logger: logger}
}

func pendienteBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"t.id", "t.titulo", "t.descripcion", "t.estado", "t.asignado_a",
		"t.fecha_limite", "t.created_at", "t.updated_at", "p.id", "p.nombre",
	).
		From(pendienteTable + " t").
		LeftJoin("proyectos p ON p.id = t.proyecto_id")
}

func scanPendiente(row pgx.Row) (*dto.PendienteDTO, error) {
	var t dto.PendienteDTO
	var fechaLimite null.Time
	var createdAt, updatedAt time.Time
	var proyectoID null.Int
	var proyectoNombre null.String

	err := row.Scan(
		&t.ID, &t.Titulo, &t.Descripcion, &t.Estado, &t.AsignadoA,
		&fechaLimite, &createdAt, &updatedAt, &proyectoID, &proyectoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if proyectoID.Valid {
		t.Proyecto = dto.ShortProyectoDTO{ID: proyectoID.Int, Nombre: proyectoNombre.String}
	}
	if fechaLimite.Valid {
		t.FechaLimite = null.StringFrom(fechaLimite.Time.Format(dto.FechaLayout))
	}
	t.CreatedAt = createdAt.Format(dto.TimeLayout)
	t.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &t, nil
}

func (r *PendienteRepository) GetPendientes(ctx context.Context, filter types.Filter) ([]dto.PendienteDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(pendienteTable+" t"),
		filter, pendienteFilterColumns, pendienteSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.PendienteDTO{}, 0, nil
	}

	builder := applyListConditions(pendienteBaseSelect(), filter, pendienteFilterColumns, pendienteSearchColumns)
	builder = applySort(builder, filter, map[string]string{
		"fecha_limite": "t.fecha_limite",
		"created_at":   "t.created_at",
	}, "t.created_at DESC")
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

	pendientes := []dto.PendienteDTO{}
	for rows.Next() {
		t, err := scanPendiente(rows)
		if err != nil {
			return nil, 0, err
		}
		pendientes = append(pendientes, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return pendientes, total, nil
}

func (r *PendienteRepository) FindPendiente(ctx context.Context, id int) (*dto.PendienteDTO, error) {
	query, args, err := pendienteBaseSelect().Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPendiente(r.storage.QueryRow(ctx, query, args...))
}

func (r *PendienteRepository) CreatePendiente(ctx context.Context, payload dto.CreatePendienteDTO) (*dto.PendienteDTO, error) {
	estado := payload.Estado
	if estado == "" {
		estado = "no_iniciado"
	}

	var fechaLimite interface{}
	if payload.FechaLimite.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.FechaLimite.String)
		if err != nil {
			return nil, apperrors.ErrBadRequest
		}
		fechaLimite = t
	}

	var id int
	query := `
		INSERT INTO pendientes (titulo, descripcion, estado, proyecto_id, asignado_a, fecha_limite)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		payload.Titulo, payload.Descripcion, estado, payload.ProyectoID, payload.AsignadoA, fechaLimite,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindPendiente(ctx, id)
}

func (r *PendienteRepository) UpdatePendiente(ctx context.Context, id int, payload dto.UpdatePendienteDTO) error {
	builder := psql.Update(pendienteTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Titulo.Valid {
		builder = builder.Set("titulo", payload.Titulo.String)
	}
	if payload.Descripcion.Valid {
		builder = builder.Set("descripcion", payload.Descripcion.String)
	}
	if payload.Estado.Valid {
		builder = builder.Set("estado", payload.Estado.String)
	}
	if payload.ProyectoID.Valid {
		builder = builder.Set("proyecto_id", payload.ProyectoID.Int)
	}
	if payload.AsignadoA.Valid {
		builder = builder.Set("asignado_a", payload.AsignadoA.Int)
	}
	if payload.FechaLimite.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.FechaLimite.String)
		if err != nil {
			return apperrors.ErrBadRequest
		}
		builder = builder.Set("fecha_limite", t)
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

func (r *PendienteRepository) CambiarEstado(ctx context.Context, id int, estado string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE pendientes SET estado = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		estado, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PendienteRepository) DeletePendiente(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM pendientes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
