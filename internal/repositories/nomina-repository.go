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

const nominaTable = "nominas"

var nominaFilterColumns = map[string]string{
	"empleado_id": "n.empleado_id",
	"proyecto_id": "n.proyecto_id",
	"periodo":     "n.periodo",
	"pagada":      "n.pagada",
}

var nominaSearchColumns = []string{"u.nombre", "n.periodo"}

type NominaRepositoryInterface interface {
	GetNominas(ctx context.Context, filter types.Filter) ([]dto.NominaDTO, uint64, error)
	FindNomina(ctx context.Context, id int) (*dto.NominaDTO, error)
	CreateNomina(ctx context.Context, payload dto.CreateNominaDTO, total float64) (*dto.NominaDTO, error)
	UpdateNomina(ctx context.Context, id int, payload dto.UpdateNominaDTO, total null.Float64) error
	MarcarPagada(ctx context.Context, id int) error
	DeleteNomina(ctx context.Context, id int) error
}

type NominaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewNominaRepository(storage *pgxpool.Pool, logger *zap.Logger) NominaRepositoryInterface {
	return &NominaRepository{storage: storage, logger: logger}
}

func nominaBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"n.id", "n.periodo", "n.salario_base", "n.horas_extra", "n.deducciones",
		"n.total", "n.pagada", "n.created_at", "n.updated_at",
		"u.id", "u.nombre", "p.id", "p.nombre",
	).
		From(nominaTable + " n").
		Join("usuarios u ON u.id = n.empleado_id").
		LeftJoin("proyectos p ON p.id = n.proyecto_id")
}

func scanNomina(row pgx.Row) (*dto.NominaDTO, error) {
	var n dto.NominaDTO
	var createdAt, updatedAt time.Time
	var proyectoID null.Int
	var proyectoNombre null.String

	err := row.Scan(
		&n.ID, &n.Periodo, &n.SalarioBase, &n.HorasExtra, &n.Deducciones,
		&n.Total, &n.Pagada, &createdAt, &updatedAt,
		&n.Empleado.ID, &n.Empleado.Nombre, &proyectoID, &proyectoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if proyectoID.Valid {
		n.Proyecto = dto.ShortProyectoDTO{ID: proyectoID.Int, Nombre: proyectoNombre.String}
	}
	n.CreatedAt = createdAt.Format(dto.TimeLayout)
	n.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &n, nil
}

func (r *NominaRepository) GetNominas(ctx context.Context, filter types.Filter) ([]dto.NominaDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(nominaTable+" n").Join("usuarios u ON u.id = n.empleado_id"),
		filter, nominaFilterColumns, nominaSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.NominaDTO{}, 0, nil
	}

	builder := applyListConditions(nominaBaseSelect(), filter, nominaFilterColumns, nominaSearchColumns)
	builder = applySort(builder, filter, map[string]string{
		"periodo":    "n.periodo",
		"total":      "n.total",
		"created_at": "n.created_at",
	}, "n.periodo DESC")
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

	nominas := []dto.NominaDTO{}
	for rows.Next() {
		n, err := scanNomina(rows)
		if err != nil {
			return nil, 0, err
		}
		nominas = append(nominas, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return nominas, total, nil
}

func (r *NominaRepository) FindNomina(ctx context.Context, id int) (*dto.NominaDTO, error) {
	query, args, err := nominaBaseSelect().Where(sq.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanNomina(r.storage.QueryRow(ctx, query, args...))
}

func (r *NominaRepository) CreateNomina(ctx context.Context, payload dto.CreateNominaDTO, total float64) (*dto.NominaDTO, error) {
	var id int
	query := `
		INSERT INTO nominas (empleado_id, proyecto_id, periodo, salario_base, horas_extra, deducciones, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		payload.EmpleadoID, payload.ProyectoID, payload.Periodo,
		payload.SalarioBase, payload.HorasExtra, payload.Deducciones, total,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindNomina(ctx, id)
}

func (r *NominaRepository) UpdateNomina(ctx context.Context, id int, payload dto.UpdateNominaDTO, total null.Float64) error {
	builder := psql.Update(nominaTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.ProyectoID.Valid {
		builder = builder.Set("proyecto_id", payload.ProyectoID.Int)
	}
	if payload.Periodo.Valid {
		builder = builder.Set("periodo", payload.Periodo.String)
	}
	if payload.SalarioBase.Valid {
		builder = builder.Set("salario_base", payload.SalarioBase.Float64)
	}
	if payload.HorasExtra.Valid {
		builder = builder.Set("horas_extra", payload.HorasExtra.Float64)
	}
	if payload.Deducciones.Valid {
		builder = builder.Set("deducciones", payload.Deducciones.Float64)
	}
	if payload.Pagada.Valid {
		builder = builder.Set("pagada", payload.Pagada.Bool)
	}
	if total.Valid {
		builder = builder.Set("total", total.Float64)
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

func (r *NominaRepository) MarcarPagada(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE nominas SET pagada = true, updated_at = CURRENT_TIMESTAMP WHERE id = $1", id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *NominaRepository) DeleteNomina(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM nominas WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
