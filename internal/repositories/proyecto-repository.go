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

const proyectoTable = "proyectos"

var proyectoSelectColumns = []string{
	"p.id", "p.nombre", "p.direccion", "p.fecha_inicio", "p.fecha_fin",
	"p.presupuesto", "p.estado", "p.created_at", "p.updated_at",
	"s.id", "s.nombre",
}

var proyectoFilterColumns = map[string]string{
	"socio_id": "p.socio_id",
	"estado":   "p.estado",
}

var proyectoSearchColumns = []string{"p.nombre", "p.direccion"}

type ProyectoRepositoryInterface interface {
	GetProyectos(ctx context.Context, filter types.Filter) ([]dto.ProyectoDTO, uint64, error)
	GetProyectosBySocio(ctx context.Context, socioID int) ([]dto.ShortProyectoDTO, error)
	FindProyecto(ctx context.Context, id int) (*dto.ProyectoDTO, error)
	CreateProyecto(ctx context.Context, payload dto.CreateProyectoDTO) (*dto.ProyectoDTO, error)
	UpdateProyecto(ctx context.Context, id int, payload dto.UpdateProyectoDTO) error
	DeleteProyecto(ctx context.Context, id int) error
}

type ProyectoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProyectoRepository(storage *pgxpool.Pool, logger *zap.Logger) ProyectoRepositoryInterface {
	return &ProyectoRepository{storage: storage, logger: logger}
}

func proyectoBaseSelect() sq.SelectBuilder {
	return psql.Select(proyectoSelectColumns...).
		From(proyectoTable + " p").
		Join("socios s ON s.id = p.socio_id")
}

func scanProyecto(row pgx.Row) (*dto.ProyectoDTO, error) {
	var p dto.ProyectoDTO
	var fechaInicio time.Time
	var fechaFin null.Time
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&p.ID, &p.Nombre, &p.Direccion, &fechaInicio, &fechaFin,
		&p.Presupuesto, &p.Estado, &createdAt, &updatedAt,
		&p.Socio.ID, &p.Socio.Nombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	p.FechaInicio = fechaInicio.Format(dto.FechaLayout)
	if fechaFin.Valid {
		p.FechaFin = null.StringFrom(fechaFin.Time.Format(dto.FechaLayout))
	}
	p.CreatedAt = createdAt.Format(dto.TimeLayout)
	p.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &p, nil
}

func (r *ProyectoRepository) GetProyectos(ctx context.Context, filter types.Filter) ([]dto.ProyectoDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(proyectoTable+" p").Join("socios s ON s.id = p.socio_id"),
		filter, proyectoFilterColumns, proyectoSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.ProyectoDTO{}, 0, nil
	}

	builder := applyListConditions(proyectoBaseSelect(), filter, proyectoFilterColumns, proyectoSearchColumns)
	builder = applySort(builder, filter, map[string]string{
		"nombre":       "p.nombre",
		"fecha_inicio": "p.fecha_inicio",
		"created_at":   "p.created_at",
	}, "p.id")
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

	proyectos := []dto.ProyectoDTO{}
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, 0, err
		}
		proyectos = append(proyectos, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return proyectos, total, nil
}

// GetProyectosBySocio alimenta el selector dependiente "proyectos de la
// empresa X" de la búsqueda de finanzas.
func (r *ProyectoRepository) GetProyectosBySocio(ctx context.Context, socioID int) ([]dto.ShortProyectoDTO, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, nombre FROM proyectos WHERE socio_id = $1 ORDER BY nombre", socioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[dto.ShortProyectoDTO])
}

func (r *ProyectoRepository) FindProyecto(ctx context.Context, id int) (*dto.ProyectoDTO, error) {
	return scanProyecto(r.queryRowBuilder(ctx, proyectoBaseSelect().Where(sq.Eq{"p.id": id})))
}

func (r *ProyectoRepository) queryRowBuilder(ctx context.Context, builder sq.SelectBuilder) pgx.Row {
	query, args, err := builder.ToSql()
	if err != nil {
		return errRow{err}
	}
	return r.storage.QueryRow(ctx, query, args...)
}

func (r *ProyectoRepository) CreateProyecto(ctx context.Context, payload dto.CreateProyectoDTO) (*dto.ProyectoDTO, error) {
	fechaInicio, err := time.Parse(dto.FechaLayout, payload.FechaInicio)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var fechaFin interface{}
	if payload.FechaFin.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.FechaFin.String)
		if err != nil {
			return nil, apperrors.ErrBadRequest
		}
		fechaFin = t
	}

	estado := payload.Estado
	if estado == "" {
		estado = "activo"
	}

	var id int
	query := `
		INSERT INTO proyectos (nombre, socio_id, direccion, fecha_inicio, fecha_fin, presupuesto, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = r.storage.QueryRow(ctx, query,
		payload.Nombre, payload.SocioID, payload.Direccion, fechaInicio, fechaFin, payload.Presupuesto, estado,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindProyecto(ctx, id)
}

func (r *ProyectoRepository) UpdateProyecto(ctx context.Context, id int, payload dto.UpdateProyectoDTO) error {
	builder := psql.Update(proyectoTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.SocioID.Valid {
		builder = builder.Set("socio_id", payload.SocioID.Int)
	}
	if payload.Direccion.Valid {
		builder = builder.Set("direccion", payload.Direccion.String)
	}
	if payload.FechaInicio.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.FechaInicio.String)
		if err != nil {
			return apperrors.ErrBadRequest
		}
		builder = builder.Set("fecha_inicio", t)
	}
	if payload.FechaFin.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.FechaFin.String)
		if err != nil {
			return apperrors.ErrBadRequest
		}
		builder = builder.Set("fecha_fin", t)
	}
	if payload.Presupuesto.Valid {
		builder = builder.Set("presupuesto", payload.Presupuesto.Float64)
	}
	if payload.Estado.Valid {
		builder = builder.Set("estado", payload.Estado.String)
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

func (r *ProyectoRepository) DeleteProyecto(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM proyectos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// errRow permite devolver un error de construcción de SQL a través de la
// interfaz pgx.Row.
type errRow struct{ err error }

func (e errRow) Scan(...interface{}) error { return e.err }
