package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"pilarum/pkg/types"
)

// psql es el builder base con placeholders $1, $2... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applyListConditions aplica al builder los filtros y la búsqueda del
// Filter estándar. Solo pasan las columnas de la lista blanca; cualquier
// otra clave se ignora.
func applyListConditions(builder sq.SelectBuilder, f types.Filter, allowedFilterColumns map[string]string, searchColumns []string) sq.SelectBuilder {
	for key, val := range f.Filter {
		if col, ok := allowedFilterColumns[key]; ok {
			builder = builder.Where(sq.Eq{col: val})
		}
	}

	if f.Search != "" && len(searchColumns) > 0 {
		or := sq.Or{}
		pattern := fmt.Sprintf("%%%s%%", f.Search)
		for _, col := range searchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		builder = builder.Where(or)
	}

	return builder
}

// applySort ordena por las columnas permitidas del sort[campo]=asc|desc; si
// no hay ninguna válida se usa el orden por defecto.
func applySort(builder sq.SelectBuilder, f types.Filter, allowedSortColumns map[string]string, defaultOrder string) sq.SelectBuilder {
	applied := false
	for field, direction := range f.Sort {
		col, ok := allowedSortColumns[field]
		if !ok {
			continue
		}
		if direction != "asc" && direction != "desc" {
			continue
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", col, direction))
		applied = true
	}
	if !applied && defaultOrder != "" {
		builder = builder.OrderBy(defaultOrder)
	}
	return builder
}

// countRows ejecuta el builder de conteo y devuelve el total.
func countRows(ctx context.Context, pool *pgxpool.Pool, builder sq.SelectBuilder) (uint64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var total uint64
	if err := pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
