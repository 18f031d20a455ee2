package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"pilarum/internal/dto"
	"pilarum/internal/search"
	apperrors "pilarum/pkg/errors"
	"pilarum/pkg/types"
)

const movimientoTable = "movimientos"

var movimientoColumns = []string{
	"id", "tipo_origen", "socio_id", "proyecto_id", "equipo_id",
	"orden_compra_id", "numero_factura", "concepto", "monto", "fecha", "created_at",
}

type MovimientoRepositoryInterface interface {
	SearchMovimientos(ctx context.Context, state search.FilterState, filter types.Filter) ([]dto.MovimientoDTO, uint64, float64, error)
	CreateMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO) (*dto.MovimientoDTO, error)
	DeleteMovimiento(ctx context.Context, id int) error
}

type MovimientoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMovimientoRepository(storage *pgxpool.Pool, logger *zap.Logger) MovimientoRepositoryInterface {
	return &MovimientoRepository{storage: storage, logger: logger}
}

// MovimientoConditions traduce el estado del formulario de búsqueda a
// condiciones SQL. Cada categoría aporta solo sus campos relevantes, igual
// que en la serialización de QueryParams.
func MovimientoConditions(state search.FilterState) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if state.TipoOrigen != search.TipoOrigenNinguno {
		conds = append(conds, sq.Eq{"tipo_origen": string(state.TipoOrigen)})
	}

	switch state.TipoOrigen {
	case search.TipoOrigenProyecto:
		if state.EmpresaID != nil {
			conds = append(conds, sq.Eq{"socio_id": *state.EmpresaID})
		}
		if state.ProyectoID != nil {
			conds = append(conds, sq.Eq{"proyecto_id": *state.ProyectoID})
		}
	case search.TipoOrigenGastoMaquinaria, search.TipoOrigenCompraMaquinaria:
		if state.EquipoID != nil {
			conds = append(conds, sq.Eq{"equipo_id": *state.EquipoID})
		}
	case search.TipoOrigenOrdenCompra:
		if state.OrdenCompraID != "" {
			conds = append(conds, sq.Eq{"numero_factura": state.OrdenCompraID})
		}
	}

	if state.FechaInicio != nil {
		conds = append(conds, sq.GtOrEq{"fecha": *state.FechaInicio})
	}
	if state.FechaFin != nil {
		conds = append(conds, sq.LtOrEq{"fecha": *state.FechaFin})
	}

	if concepto := state.Extra["concepto"]; concepto != "" {
		conds = append(conds, sq.ILike{"concepto": "%" + concepto + "%"})
	}

	return conds
}

func applyConds(builder sq.SelectBuilder, conds []sq.Sqlizer) sq.SelectBuilder {
	for _, c := range conds {
		builder = builder.Where(c)
	}
	return builder
}

// SearchMovimientos devuelve la página pedida, el número total de filas y la
// suma de montos sobre TODO el resultado filtrado, no solo la página.
func (r *MovimientoRepository) SearchMovimientos(ctx context.Context, state search.FilterState, filter types.Filter) ([]dto.MovimientoDTO, uint64, float64, error) {
	conds := MovimientoConditions(state)

	aggBuilder := applyConds(psql.Select("COUNT(*)", "COALESCE(SUM(monto), 0)").From(movimientoTable), conds)
	query, args, err := aggBuilder.ToSql()
	if err != nil {
		return nil, 0, 0, err
	}

	var total uint64
	var totalMonto float64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total, &totalMonto); err != nil {
		return nil, 0, 0, err
	}
	if total == 0 {
		return []dto.MovimientoDTO{}, 0, 0, nil
	}

	builder := applyConds(psql.Select(movimientoColumns...).From(movimientoTable), conds).
		OrderBy("fecha DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return nil, 0, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	movimientos := []dto.MovimientoDTO{}
	for rows.Next() {
		var m dto.MovimientoDTO
		var fecha, createdAt time.Time
		err := rows.Scan(
			&m.ID, &m.TipoOrigen, &m.SocioID, &m.ProyectoID, &m.EquipoID,
			&m.OrdenCompraID, &m.NumeroFactura, &m.Concepto, &m.Monto, &fecha, &createdAt,
		)
		if err != nil {
			return nil, 0, 0, err
		}
		m.Fecha = fecha.Format(dto.FechaLayout)
		m.CreatedAt = createdAt.Format(dto.TimeLayout)
		movimientos = append(movimientos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	return movimientos, total, totalMonto, nil
}

func (r *MovimientoRepository) CreateMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO) (*dto.MovimientoDTO, error) {
	fecha, err := time.Parse(dto.FechaLayout, payload.Fecha)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	query := `
		INSERT INTO movimientos (tipo_origen, socio_id, proyecto_id, equipo_id, orden_compra_id, numero_factura, concepto, monto, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	var id int
	var createdAt time.Time
	err = r.storage.QueryRow(ctx, query,
		payload.TipoOrigen, payload.SocioID, payload.ProyectoID, payload.EquipoID,
		payload.OrdenCompraID, payload.NumeroFactura, payload.Concepto, payload.Monto, fecha,
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, err
	}

	return &dto.MovimientoDTO{
		ID:            id,
		TipoOrigen:    payload.TipoOrigen,
		SocioID:       payload.SocioID,
		ProyectoID:    payload.ProyectoID,
		EquipoID:      payload.EquipoID,
		OrdenCompraID: payload.OrdenCompraID,
		NumeroFactura: payload.NumeroFactura,
		Concepto:      payload.Concepto,
		Monto:         payload.Monto,
		Fecha:         fecha.Format(dto.FechaLayout),
		CreatedAt:     createdAt.Format(dto.TimeLayout),
	}, nil
}

func (r *MovimientoRepository) DeleteMovimiento(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM movimientos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
