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

const materialTable = "materiales"

var materialFilterColumns = map[string]string{
	"proyecto_id": "m.proyecto_id",
	"categoria":   "m.categoria",
}

var materialSearchColumns = []string{"m.nombre", "m.categoria"}

type InventarioRepositoryInterface interface {
	GetMateriales(ctx context.Context, filter types.Filter) ([]dto.MaterialDTO, uint64, error)
	FindMaterial(ctx context.Context, id int) (*dto.MaterialDTO, error)
	CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*dto.MaterialDTO, error)
	UpdateMaterial(ctx context.Context, id int, payload dto.UpdateMaterialDTO) error
	AjustarCantidad(ctx context.Context, id int, delta float64) error
	DeleteMaterial(ctx context.Context, id int) error
}

type InventarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInventarioRepository(storage *pgxpool.Pool, logger *zap.Logger) InventarioRepositoryInterface {
	return &InventarioRepository{storage: storage, logger: logger}
}

func materialBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"m.id", "m.nombre", "m.categoria", "m.unidad", "m.cantidad",
		"m.precio_unitario", "m.created_at", "m.updated_at", "p.id", "p.nombre",
	).
		From(materialTable + " m").
		LeftJoin("proyectos p ON p.id = m.proyecto_id")
}

func scanMaterial(row pgx.Row) (*dto.MaterialDTO, error) {
	var m dto.MaterialDTO
	var createdAt, updatedAt time.Time
	var proyectoID null.Int
	var proyectoNombre null.String

	err := row.Scan(
		&m.ID, &m.Nombre, &m.Categoria, &m.Unidad, &m.Cantidad,
		&m.PrecioUnitario, &createdAt, &updatedAt, &proyectoID, &proyectoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if proyectoID.Valid {
		m.Proyecto = dto.ShortProyectoDTO{ID: proyectoID.Int, Nombre: proyectoNombre.String}
	}
	m.CreatedAt = createdAt.Format(dto.TimeLayout)
	m.UpdatedAt = updatedAt.Format(dto.TimeLayout)
	return &m, nil
}

func (r *InventarioRepository) GetMateriales(ctx context.Context, filter types.Filter) ([]dto.MaterialDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(materialTable+" m"),
		filter, materialFilterColumns, materialSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.MaterialDTO{}, 0, nil
	}

	builder := applyListConditions(materialBaseSelect(), filter, materialFilterColumns, materialSearchColumns)
	builder = applySort(builder, filter, map[string]string{
		"nombre":     "m.nombre",
		"cantidad":   "m.cantidad",
		"created_at": "m.created_at",
	}, "m.nombre")
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

	materiales := []dto.MaterialDTO{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		materiales = append(materiales, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return materiales, total, nil
}

func (r *InventarioRepository) FindMaterial(ctx context.Context, id int) (*dto.MaterialDTO, error) {
	query, args, err := materialBaseSelect().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaterial(r.storage.QueryRow(ctx, query, args...))
}

func (r *InventarioRepository) CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*dto.MaterialDTO, error) {
	var id int
	query := `
		INSERT INTO materiales (nombre, categoria, unidad, cantidad, precio_unitario, proyecto_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		payload.Nombre, payload.Categoria, payload.Unidad, payload.Cantidad, payload.PrecioUnitario, payload.ProyectoID,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindMaterial(ctx, id)
}

func (r *InventarioRepository) UpdateMaterial(ctx context.Context, id int, payload dto.UpdateMaterialDTO) error {
	builder := psql.Update(materialTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.Categoria.Valid {
		builder = builder.Set("categoria", payload.Categoria.String)
	}
	if payload.Unidad.Valid {
		builder = builder.Set("unidad", payload.Unidad.String)
	}
	if payload.Cantidad.Valid {
		builder = builder.Set("cantidad", payload.Cantidad.Float64)
	}
	if payload.PrecioUnitario.Valid {
		builder = builder.Set("precio_unitario", payload.PrecioUnitario.Float64)
	}
	if payload.ProyectoID.Valid {
		builder = builder.Set("proyecto_id", payload.ProyectoID.Int)
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

// AjustarCantidad suma delta al stock; el CHECK de la tabla impide quedar en
// negativo.
func (r *InventarioRepository) AjustarCantidad(ctx context.Context, id int, delta float64) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE materiales SET cantidad = cantidad + $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		delta, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InventarioRepository) DeleteMaterial(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM materiales WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
