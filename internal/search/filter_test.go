package search

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestQueryParamsOmitsEmptyFields(t *testing.T) {
	f := FilterState{TipoOrigen: TipoOrigenNinguno, FechaInicio: nil}

	params := f.QueryParams()

	assert.Empty(t, params)
}

func TestQueryParamsProyectoVariant(t *testing.T) {
	f := FilterState{
		TipoOrigen: TipoOrigenProyecto,
		EmpresaID:  intPtr(4),
		ProyectoID: intPtr(17),
		// campos de otras variantes que NO deben serializarse
		EquipoID:      intPtr(9),
		OrdenCompraID: "F-123",
	}

	params := f.QueryParams()

	assert.Equal(t, map[string]string{
		"tipo_origen": "proyecto",
		"empresa":     "4",
		"proyecto":    "17",
	}, params)
}

func TestQueryParamsOrdenCompraVariant(t *testing.T) {
	f := FilterState{
		TipoOrigen:    TipoOrigenOrdenCompra,
		OrdenCompraID: "F-2024-001",
		EmpresaID:     intPtr(4),
	}

	params := f.QueryParams()

	assert.Equal(t, map[string]string{
		"tipo_origen":    "orden_compra",
		"numero_factura": "F-2024-001",
	}, params)
}

func TestQueryParamsMaquinariaVariants(t *testing.T) {
	for _, tipo := range []TipoOrigen{TipoOrigenGastoMaquinaria, TipoOrigenCompraMaquinaria} {
		f := FilterState{TipoOrigen: tipo, EquipoID: intPtr(3), ProyectoID: intPtr(8)}
		params := f.QueryParams()
		assert.Equal(t, map[string]string{
			"tipo_origen": string(tipo),
			"equipo":      "3",
		}, params)
	}
}

func TestQueryParamsFormatsDates(t *testing.T) {
	inicio := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	fin := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	f := FilterState{FechaInicio: &inicio, FechaFin: &fin}

	params := f.QueryParams()

	assert.Equal(t, "05-03-2026", params["fecha_inicio"])
	assert.Equal(t, "31-12-2026", params["fecha_fin"])
}

func TestQueryParamsSkipsEmptyExtras(t *testing.T) {
	f := FilterState{Extra: map[string]string{"categoria": "7", "almacen": ""}}

	params := f.QueryParams()

	assert.Equal(t, map[string]string{"categoria": "7"}, params)
}

func TestParseOptionalID(t *testing.T) {
	assert.Nil(t, ParseOptionalID(""))
	assert.Nil(t, ParseOptionalID("abc"))
	assert.Nil(t, ParseOptionalID("-2"))
	assert.Nil(t, ParseOptionalID("0"))

	id := ParseOptionalID("42")
	require.NotNil(t, id)
	assert.Equal(t, 42, *id)
}

func TestParseFromQueryRoundTrip(t *testing.T) {
	values := url.Values{}
	values.Set("tipo_origen", "proyecto")
	values.Set("empresa", "4")
	values.Set("proyecto", "17")
	values.Set("fecha_inicio", "01-02-2026")

	f := ParseFromQuery(values)

	require.NotNil(t, f.EmpresaID)
	require.NotNil(t, f.ProyectoID)
	assert.Equal(t, TipoOrigenProyecto, f.TipoOrigen)
	assert.Equal(t, 4, *f.EmpresaID)
	assert.Equal(t, 17, *f.ProyectoID)
	require.NotNil(t, f.FechaInicio)
	assert.Equal(t, "01-02-2026", f.FechaInicio.Format(FechaLayout))
	assert.Nil(t, f.FechaFin)
}

func TestParseFromQueryInvalidInputDegradesToUnset(t *testing.T) {
	values := url.Values{}
	values.Set("tipo_origen", "algo_raro")
	values.Set("empresa", "no-numerico")
	values.Set("fecha_inicio", "2026/01/01")

	f := ParseFromQuery(values)

	assert.Equal(t, TipoOrigenNinguno, f.TipoOrigen)
	assert.Nil(t, f.EmpresaID)
	assert.Nil(t, f.FechaInicio)
}
