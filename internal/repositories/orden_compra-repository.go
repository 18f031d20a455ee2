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

const ordenCompraTable = "ordenes_compra"

var ordenCompraFilterColumns = map[string]string{
	"proyecto_id": "o.proyecto_id",
	"proveedor":   "o.proveedor",
}

var ordenCompraSearchColumns = []string{"o.numero_factura", "o.proveedor", "o.descripcion"}

type OrdenCompraRepositoryInterface interface {
	GetOrdenesCompra(ctx context.Context, filter types.Filter) ([]dto.OrdenCompraDTO, uint64, error)
	GetOrdenesCompraAll(ctx context.Context) ([]dto.ShortOrdenCompraDTO, error)
	FindOrdenCompra(ctx context.Context, id int) (*dto.OrdenCompraDTO, error)
	CreateOrdenCompra(ctx context.Context, payload dto.CreateOrdenCompraDTO) (*dto.OrdenCompraDTO, error)
	UpdateOrdenCompra(ctx context.Context, id int, payload dto.UpdateOrdenCompraDTO) error
	DeleteOrdenCompra(ctx context.Context, id int) error
}

type OrdenCompraRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrdenCompraRepository(storage *pgxpool.Pool, logger *zap.Logger) OrdenCompraRepositoryInterface {
	return &OrdenCompraRepository{storage: storage, logger: logger}
}

func ordenCompraBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"o.id", "o.numero_factura", "o.proveedor", "o.fecha", "o.monto",
		"o.descripcion", "o.created_at", "o.updated_at", "p.id", "p.nombre",
	).
		From(ordenCompraTable + " o").
		LeftJoin("proyectos p ON p.id = o.proyecto_id")
}

func scanOrdenCompra(row pgx.Row) (*dto.OrdenCompraDTO, error) {
	var o dto.OrdenCompraDTO
	var fecha, createdAt, updatedAt time.Time
	var proyectoID null.Int
	var proyectoNombre null.String

	err := row.Scan(
		&o.ID, &o.NumeroFactura, &o.Proveedor, &fecha, &o.Monto,
		&o.Descripcion, &createdAt, &updatedAt, &proyectoID, &proyectoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if proyectoID.Valid {
		o.Proyecto = dto.ShortProyectoDTO{ID: proyectoID.Int, Nombre: proyectoNombre.String}
	}
	o.Fecha = fecha.Format(dto.FechaLayout)
	o.CreatedAt = createdAt.Format(dto.TimeLayout)
	o.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &o, nil
}

func (r *OrdenCompraRepository) GetOrdenesCompra(ctx context.Context, filter types.Filter) ([]dto.OrdenCompraDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(ordenCompraTable+" o"),
		filter, ordenCompraFilterColumns, ordenCompraSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.OrdenCompraDTO{}, 0, nil
	}

	builder := applyListConditions(ordenCompraBaseSelect(), filter, ordenCompraFilterColumns, ordenCompraSearchColumns)
	builder = applySort(builder, filter, map[string]string{
		"fecha":      "o.fecha",
		"monto":      "o.monto",
		"created_at": "o.created_at",
	}, "o.fecha DESC")
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

	ordenes := []dto.OrdenCompraDTO{}
	for rows.Next() {
		o, err := scanOrdenCompra(rows)
		if err != nil {
			return nil, 0, err
		}
		ordenes = append(ordenes, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return ordenes, total, nil
}

// GetOrdenesCompraAll alimenta el selector de órdenes de la búsqueda de
// finanzas.
func (r *OrdenCompraRepository) GetOrdenesCompraAll(ctx context.Context) ([]dto.ShortOrdenCompraDTO, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, numero_factura FROM ordenes_compra ORDER BY fecha DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[dto.ShortOrdenCompraDTO])
}

func (r *OrdenCompraRepository) FindOrdenCompra(ctx context.Context, id int) (*dto.OrdenCompraDTO, error) {
	query, args, err := ordenCompraBaseSelect().Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanOrdenCompra(r.storage.QueryRow(ctx, query, args...))
}

func (r *OrdenCompraRepository) CreateOrdenCompra(ctx context.Context, payload dto.CreateOrdenCompraDTO) (*dto.OrdenCompraDTO, error) {
	fecha, err := time.Parse(dto.FechaLayout, payload.Fecha)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var id int
	query := `
		INSERT INTO ordenes_compra (numero_factura, proveedor, proyecto_id, fecha, monto, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = r.storage.QueryRow(ctx, query,
		payload.NumeroFactura, payload.Proveedor, payload.ProyectoID, fecha, payload.Monto, payload.Descripcion,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindOrdenCompra(ctx, id)
}

func (r *OrdenCompraRepository) UpdateOrdenCompra(ctx context.Context, id int, payload dto.UpdateOrdenCompraDTO) error {
	builder := psql.Update(ordenCompraTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.NumeroFactura.Valid {
		builder = builder.Set("numero_factura", payload.NumeroFactura.String)
	}
	if payload.Proveedor.Valid {
		builder = builder.Set("proveedor", payload.Proveedor.String)
	}
	if payload.ProyectoID.Valid {
		builder = builder.Set("proyecto_id", payload.ProyectoID.Int)
	}
	if payload.Fecha.Valid {
		t, err := time.Parse(dto.FechaLayout, payload.Fecha.String)
		if err != nil {
			return apperrors.ErrBadRequest
		}
		builder = builder.Set("fecha", t)
	}
	if payload.Monto.Valid {
		builder = builder.Set("monto", payload.Monto.Float64)
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

func (r *OrdenCompraRepository) DeleteOrdenCompra(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM ordenes_compra WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
