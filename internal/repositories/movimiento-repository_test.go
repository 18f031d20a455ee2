package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pilarum/internal/search"
)

func condsToSQL(t *testing.T, state search.FilterState) (string, []interface{}) {
	t.Helper()
	builder := applyConds(psql.Select("id").From(movimientoTable), MovimientoConditions(state))
	query, args, err := builder.ToSql()
	require.NoError(t, err)
	return query, args
}

func TestMovimientoConditionsSinCategoria(t *testing.T) {
	query, args := condsToSQL(t, search.FilterState{})

	assert.Equal(t, "SELECT id FROM movimientos", query)
	assert.Empty(t, args)
}

func TestMovimientoConditionsProyecto(t *testing.T) {
	empresa, proyecto := 3, 7
	query, args := condsToSQL(t, search.FilterState{
		TipoOrigen: search.TipoOrigenProyecto,
		EmpresaID:  &empresa,
		ProyectoID: &proyecto,
		EquipoID:   &empresa, // no aplica a esta categoría
	})

	assert.Contains(t, query, "tipo_origen = $1")
	assert.Contains(t, query, "socio_id = $2")
	assert.Contains(t, query, "proyecto_id = $3")
	assert.NotContains(t, query, "equipo_id")
	assert.Equal(t, []interface{}{"proyecto", 3, 7}, args)
}

func TestMovimientoConditionsMaquinaria(t *testing.T) {
	equipo := 12
	for _, tipo := range []search.TipoOrigen{search.TipoOrigenGastoMaquinaria, search.TipoOrigenCompraMaquinaria} {
		query, args := condsToSQL(t, search.FilterState{TipoOrigen: tipo, EquipoID: &equipo})

		assert.Contains(t, query, "equipo_id = $2")
		assert.NotContains(t, query, "socio_id")
		assert.Equal(t, []interface{}{string(tipo), 12}, args)
	}
}

func TestMovimientoConditionsOrdenCompra(t *testing.T) {
	query, args := condsToSQL(t, search.FilterState{
		TipoOrigen:    search.TipoOrigenOrdenCompra,
		OrdenCompraID: "FAC-001",
	})

	assert.Contains(t, query, "numero_factura = $2")
	assert.Equal(t, []interface{}{"orden_compra", "FAC-001"}, args)
}

func TestMovimientoConditionsFechasYConcepto(t *testing.T) {
	inicio, err := time.Parse(search.FechaLayout, "01-03-2025")
	require.NoError(t, err)
	fin, err := time.Parse(search.FechaLayout, "31-03-2025")
	require.NoError(t, err)

	query, args := condsToSQL(t, search.FilterState{
		FechaInicio: &inicio,
		FechaFin:    &fin,
		Extra:       map[string]string{"concepto": "hormigon"},
	})

	assert.Contains(t, query, "fecha >= $1")
	assert.Contains(t, query, "fecha <= $2")
	assert.Contains(t, query, "concepto ILIKE $3")
	assert.Equal(t, []interface{}{inicio, fin, "%hormigon%"}, args)
}
