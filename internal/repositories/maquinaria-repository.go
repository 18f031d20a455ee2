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

const maquinariaTable = "maquinaria"

var maquinariaFilterColumns = map[string]string{
	"proyecto_id": "m.proyecto_id",
	"tipo":        "m.tipo",
}

var maquinariaSearchColumns = []string{"m.nombre", "m.matricula"}

type MaquinariaRepositoryInterface interface {
	GetMaquinaria(ctx context.Context, filter types.Filter) ([]dto.MaquinariaDTO, uint64, error)
	GetEquiposAll(ctx context.Context) ([]dto.ShortMaquinariaDTO, error)
	FindMaquina(ctx context.Context, id int) (*dto.MaquinariaDTO, error)
	CreateMaquina(ctx context.Context, payload dto.CreateMaquinariaDTO) (*dto.MaquinariaDTO, error)
	UpdateMaquina(ctx context.Context, id int, payload dto.UpdateMaquinariaDTO) error
	DeleteMaquina(ctx context.Context, id int) error
}

type MaquinariaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaquinariaRepository(storage *pgxpool.Pool, logger *zap.Logger) MaquinariaRepositoryInterface {
	return &MaquinariaRepository{storage: storage, logger: logger}
}

func maquinariaBaseSelect() sq.SelectBuilder {
	return psql.Select(
		"m.id", "m.nombre", "m.matricula", "m.tipo", "m.coste_hora",
		"m.created_at", "m.updated_at", "p.id", "p.nombre",
	).
		From(maquinariaTable + " m").
		LeftJoin("proyectos p ON p.id = m.proyecto_id")
}

func scanMaquina(row pgx.Row) (*dto.MaquinariaDTO, error) {
	var m dto.MaquinariaDTO
	var createdAt, updatedAt time.Time
	var proyectoID null.Int
	var proyectoNombre null.String

	err := row.Scan(
		&m.ID, &m.Nombre, &m.Matricula, &m.Tipo, &m.CosteHora,
		&createdAt, &updatedAt, &proyectoID, &proyectoNombre,
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

func (r *MaquinariaRepository) GetMaquinaria(ctx context.Context, filter types.Filter) ([]dto.MaquinariaDTO, uint64, error) {
	countBuilder := applyListConditions(
		psql.Select("COUNT(*)").From(maquinariaTable+" m"),
		filter, maquinariaFilterColumns, maquinariaSearchColumns,
	)
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.MaquinariaDTO{}, 0, nil
	}

	builder := applyListConditions(maquinariaBaseSelect(), filter, maquinariaFilterColumns, maquinariaSearchColumns)
	builder = applySort(builder, filter, map[string]string{"nombre": "m.nombre", "created_at": "m.created_at"}, "m.id")
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

	maquinas := []dto.MaquinariaDTO{}
	for rows.Next() {
		m, err := scanMaquina(rows)
		if err != nil {
			return nil, 0, err
		}
		maquinas = append(maquinas, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return maquinas, total, nil
}

// GetEquiposAll alimenta el selector de equipos de la búsqueda de finanzas.
func (r *MaquinariaRepository) GetEquiposAll(ctx context.Context) ([]dto.ShortMaquinariaDTO, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, nombre FROM maquinaria ORDER BY nombre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[dto.ShortMaquinariaDTO])
}

func (r *MaquinariaRepository) FindMaquina(ctx context.Context, id int) (*dto.MaquinariaDTO, error) {
	query, args, err := maquinariaBaseSelect().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaquina(r.storage.QueryRow(ctx, query, args...))
}

func (r *MaquinariaRepository) CreateMaquina(ctx context.Context, payload dto.CreateMaquinariaDTO) (*dto.MaquinariaDTO, error) {
	var id int
	query := `
		INSERT INTO maquinaria (nombre, matricula, tipo, proyecto_id, coste_hora)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.storage.QueryRow(ctx, query,
		payload.Nombre, payload.Matricula, payload.Tipo, payload.ProyectoID, payload.CosteHora,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindMaquina(ctx, id)
}

func (r *MaquinariaRepository) UpdateMaquina(ctx context.Context, id int, payload dto.UpdateMaquinariaDTO) error {
	builder := psql.Update(maquinariaTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Nombre.Valid {
		builder = builder.Set("nombre", payload.Nombre.String)
	}
	if payload.Matricula.Valid {
		builder = builder.Set("matricula", payload.Matricula.String)
	}
	if payload.Tipo.Valid {
		builder = builder.Set("tipo", payload.Tipo.String)
	}
	if payload.ProyectoID.Valid {
		builder = builder.Set("proyecto_id", payload.ProyectoID.Int)
	}
	if payload.CosteHora.Valid {
		builder = builder.Set("coste_hora", payload.CosteHora.Float64)
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

func (r *MaquinariaRepository) DeleteMaquina(ctx context.Context, id int) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maquinaria WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
