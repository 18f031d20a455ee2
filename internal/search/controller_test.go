package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type movimiento struct {
	Concepto string
	Monto    float64
}

func montoDe(m movimiento) float64 { return m.Monto }

func newTestController(fetch FetchFunc[movimiento], lookups Lookups) *Controller[movimiento] {
	return NewController("Finanzas", fetch, montoDe, lookups, zap.NewNop())
}

func staticFetch(items []movimiento) FetchFunc[movimiento] {
	return func(context.Context, map[string]string) ([]movimiento, error) {
		return items, nil
	}
}

func TestCascadeTipoOrigenClearsEmpresaYProyecto(t *testing.T) {
	c := newTestController(staticFetch(nil), Lookups{})

	require.NoError(t, c.SetEmpresa(context.Background(), intPtr(4)))
	c.SetProyecto(intPtr(17))

	require.NoError(t, c.SetTipoOrigen(context.Background(), TipoOrigenOrdenCompra))

	f := c.Filtros()
	assert.Nil(t, f.EmpresaID)
	assert.Nil(t, f.ProyectoID)
	assert.Equal(t, TipoOrigenOrdenCompra, f.TipoOrigen)
}

func TestCascadeEmpresaClearsProyectoAndReloadsLookup(t *testing.T) {
	var loadedFor []int
	lookups := Lookups{
		ProyectosByEmpresa: func(_ context.Context, empresaID int) ([]Option, error) {
			loadedFor = append(loadedFor, empresaID)
			return []Option{{ID: empresaID * 10, Nombre: "Proyecto"}}, nil
		},
	}
	c := newTestController(staticFetch(nil), lookups)

	require.NoError(t, c.SetEmpresa(context.Background(), intPtr(1)))
	c.SetProyecto(intPtr(10))

	// cambiar de empresa limpia el proyecto seleccionado
	require.NoError(t, c.SetEmpresa(context.Background(), intPtr(2)))
	assert.Nil(t, c.Filtros().ProyectoID)
	assert.Equal(t, []int{1, 2}, loadedFor)
	assert.Equal(t, []Option{{ID: 20, Nombre: "Proyecto"}}, c.Proyectos())

	// vaciar la empresa también limpia el proyecto y la lista
	c.SetProyecto(intPtr(20))
	require.NoError(t, c.SetEmpresa(context.Background(), nil))
	assert.Nil(t, c.Filtros().ProyectoID)
	assert.Empty(t, c.Proyectos())
}

func TestLookupsLoadAtMostOnce(t *testing.T) {
	var equipos, ordenes int32
	lookups := Lookups{
		Equipos: func(context.Context) ([]Option, error) {
			atomic.AddInt32(&equipos, 1)
			return []Option{{ID: 1, Nombre: "Grúa"}}, nil
		},
		OrdenesCompra: func(context.Context) ([]Option, error) {
			atomic.AddInt32(&ordenes, 1)
			return []Option{{ID: 1, Nombre: "F-001"}}, nil
		},
	}
	c := newTestController(staticFetch(nil), lookups)
	ctx := context.Background()

	require.NoError(t, c.SetTipoOrigen(ctx, TipoOrigenGastoMaquinaria))
	require.NoError(t, c.SetTipoOrigen(ctx, TipoOrigenOrdenCompra))
	require.NoError(t, c.SetTipoOrigen(ctx, TipoOrigenCompraMaquinaria))
	require.NoError(t, c.SetTipoOrigen(ctx, TipoOrigenOrdenCompra))

	assert.Equal(t, int32(1), atomic.LoadInt32(&equipos))
	assert.Equal(t, int32(1), atomic.LoadInt32(&ordenes))
}

func TestBuscarReplacesResultsAndComputesTotal(t *testing.T) {
	items := []movimiento{{"Hormigón", 100}, {"Acero", 50}, {"Sin precio", 0}}
	c := newTestController(staticFetch(items), Lookups{})

	require.NoError(t, c.Buscar(context.Background()))

	assert.Len(t, c.Resultados(), 3)
	assert.InDelta(t, 150, c.Total(), 0.001)
	assert.False(t, c.Cargando())
}

func TestBuscarFailureKeepsPreviousResults(t *testing.T) {
	var fail atomic.Bool
	fetch := func(context.Context, map[string]string) ([]movimiento, error) {
		if fail.Load() {
			return nil, errors.New("red caída")
		}
		return []movimiento{{"Hormigón", 100}}, nil
	}
	c := newTestController(fetch, Lookups{})

	require.NoError(t, c.Buscar(context.Background()))
	require.Len(t, c.Resultados(), 1)

	fail.Store(true)
	err := c.Buscar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Finanzas")

	// el listado anterior sigue en pie y el indicador de carga se apaga
	assert.Len(t, c.Resultados(), 1)
	assert.False(t, c.Cargando())
}

func TestBuscarStaleResponseDoesNotOverwrite(t *testing.T) {
	primera := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context, params map[string]string) ([]movimiento, error) {
		n := calls.Add(1)
		if n == 1 {
			<-primera // la primera petición se queda colgada
			return []movimiento{{"VIEJO", 1}}, nil
		}
		return []movimiento{{"NUEVO", 2}}, nil
	}
	c := newTestController(fetch, Lookups{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Buscar(context.Background())
	}()

	// segunda búsqueda: llega y resuelve antes que la primera
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.Buscar(context.Background()))
	require.Len(t, c.Resultados(), 1)
	assert.Equal(t, "NUEVO", c.Resultados()[0].Concepto)

	// ahora resuelve la primera: su resultado es obsoleto y se descarta
	close(primera)
	wg.Wait()
	assert.Equal(t, "NUEVO", c.Resultados()[0].Concepto)
}

func TestLimpiarResetsWithoutFetching(t *testing.T) {
	var fetches atomic.Int32
	fetch := func(context.Context, map[string]string) ([]movimiento, error) {
		fetches.Add(1)
		return []movimiento{{"Hormigón", 100}}, nil
	}
	c := newTestController(fetch, Lookups{})

	require.NoError(t, c.SetTipoOrigen(context.Background(), TipoOrigenProyecto))
	require.NoError(t, c.SetEmpresa(context.Background(), intPtr(4)))
	require.NoError(t, c.Buscar(context.Background()))
	require.Equal(t, int32(1), fetches.Load())

	c.Limpiar()

	f := c.Filtros()
	assert.Equal(t, TipoOrigenNinguno, f.TipoOrigen)
	assert.Nil(t, f.EmpresaID)
	assert.Empty(t, c.Resultados())
	assert.Zero(t, c.Total())
	// Limpiar nunca consulta por su cuenta
	assert.Equal(t, int32(1), fetches.Load())
}

func TestBuscarSendsOnlyRelevantParams(t *testing.T) {
	var got map[string]string
	fetch := func(_ context.Context, params map[string]string) ([]movimiento, error) {
		got = params
		return nil, nil
	}
	c := newTestController(fetch, Lookups{})

	require.NoError(t, c.SetTipoOrigen(context.Background(), TipoOrigenOrdenCompra))
	c.SetOrdenCompra("F-77")
	c.SetEquipo(intPtr(3)) // de otra variante: no debe viajar

	require.NoError(t, c.Buscar(context.Background()))

	assert.Equal(t, map[string]string{
		"tipo_origen":    "orden_compra",
		"numero_factura": "F-77",
	}, got)
}
