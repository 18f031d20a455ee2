package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option es una entrada de un selector de referencia (proyectos de una
// empresa, equipos, órdenes de compra).
type Option struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// FetchFunc es la frontera asíncrona inyectada: "dame las entidades que
// cumplen estos filtros".
type FetchFunc[T any] func(ctx context.Context, params map[string]string) ([]T, error)

// Lookups agrupa las cargas de listas de referencia. Se asumen idempotentes
// y sin efectos secundarios.
type Lookups struct {
	ProyectosByEmpresa func(ctx context.Context, empresaID int) ([]Option, error)
	Equipos            func(ctx context.Context) ([]Option, error)
	OrdenesCompra      func(ctx context.Context) ([]Option, error)
}

// Controller orquesta el patrón búsqueda/resultados: mantiene el estado de
// los filtros, encadena las recargas de selectores dependientes y ejecuta
// la búsqueda contra el fetch inyectado solo cuando se pide explícitamente.
type Controller[T any] struct {
	titulo  string
	fetch   FetchFunc[T]
	monto   func(T) float64
	lookups Lookups
	logger  *zap.Logger

	mu         sync.Mutex
	filtros    FilterState
	resultados []T
	cargando   bool
	seq        uint64

	proyectos       []Option
	equipos         []Option
	ordenes         []Option
	equiposCargados bool
	ordenesCargadas bool
}

func NewController[T any](titulo string, fetch FetchFunc[T], monto func(T) float64, lookups Lookups, logger *zap.Logger) *Controller[T] {
	return &Controller[T]{
		titulo:  titulo,
		fetch:   fetch,
		monto:   monto,
		lookups: lookups,
		logger:  logger,
		filtros: FilterState{Extra: map[string]string{}},
	}
}

// SetTipoOrigen cambia la categoría superior. Vacía empresa y proyecto y
// carga de forma perezosa la lista de referencia de la categoría, como
// mucho una vez por sesión.
func (c *Controller[T]) SetTipoOrigen(ctx context.Context, tipo TipoOrigen) error {
	c.mu.Lock()
	c.filtros.TipoOrigen = tipo
	c.filtros.EmpresaID = nil
	c.filtros.ProyectoID = nil
	c.proyectos = nil

	var load func() error
	switch tipo {
	case TipoOrigenGastoMaquinaria, TipoOrigenCompraMaquinaria:
		if !c.equiposCargados && c.lookups.Equipos != nil {
			load = func() error {
				opts, err := c.lookups.Equipos(ctx)
				if err != nil {
					return err
				}
				c.mu.Lock()
				c.equipos = opts
				c.equiposCargados = true
				c.mu.Unlock()
				return nil
			}
		}
	case TipoOrigenOrdenCompra:
		if !c.ordenesCargadas && c.lookups.OrdenesCompra != nil {
			load = func() error {
				opts, err := c.lookups.OrdenesCompra(ctx)
				if err != nil {
					return err
				}
				c.mu.Lock()
				c.ordenes = opts
				c.ordenesCargadas = true
				c.mu.Unlock()
				return nil
			}
		}
	}
	c.mu.Unlock()

	if load != nil {
		if err := load(); err != nil {
			c.logger.Warn("no se pudo cargar la lista de referencia",
				zap.String("titulo", c.titulo),
				zap.String("tipo_origen", string(tipo)),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

// SetEmpresa selecciona la empresa padre: limpia el proyecto dependiente y
// recarga los proyectos de esa empresa.
func (c *Controller[T]) SetEmpresa(ctx context.Context, empresaID *int) error {
	c.mu.Lock()
	c.filtros.EmpresaID = empresaID
	c.filtros.ProyectoID = nil
	c.proyectos = nil
	c.mu.Unlock()

	if empresaID == nil || c.lookups.ProyectosByEmpresa == nil {
		return nil
	}

	opts, err := c.lookups.ProyectosByEmpresa(ctx, *empresaID)
	if err != nil {
		c.logger.Warn("no se pudieron cargar los proyectos de la empresa",
			zap.String("titulo", c.titulo),
			zap.Int("empresa_id", *empresaID),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	c.proyectos = opts
	c.mu.Unlock()
	return nil
}

func (c *Controller[T]) SetProyecto(proyectoID *int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros.ProyectoID = proyectoID
}

func (c *Controller[T]) SetEquipo(equipoID *int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros.EquipoID = equipoID
}

func (c *Controller[T]) SetOrdenCompra(numeroFactura string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros.OrdenCompraID = numeroFactura
}

func (c *Controller[T]) SetFechas(inicio, fin *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros.FechaInicio = inicio
	c.filtros.FechaFin = fin
}

func (c *Controller[T]) SetExtra(nombre, valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filtros.Extra == nil {
		c.filtros.Extra = map[string]string{}
	}
	c.filtros.Extra[nombre] = valor
}

// Buscar convierte el estado de filtros en parámetros de consulta y ejecuta
// el fetch. Cada llamada lleva un número de secuencia: solo la respuesta de
// la petición más reciente puede aplicar su resultado, así una respuesta
// tardía nunca pisa a una más nueva.
func (c *Controller[T]) Buscar(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	params := c.filtros.QueryParams()
	c.cargando = true
	c.mu.Unlock()

	items, err := c.fetch(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq == c.seq {
		c.cargando = false
	}

	if err != nil {
		// el listado anterior se conserva
		c.logger.Error("la búsqueda falló",
			zap.String("titulo", c.titulo),
			zap.Any("params", params),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", c.titulo, err)
	}

	if mySeq != c.seq {
		// respuesta obsoleta: ya se lanzó una búsqueda más nueva
		return nil
	}

	c.resultados = items
	return nil
}

// Limpiar devuelve todos los filtros a sus valores por defecto y vacía los
// resultados mostrados. No vuelve a consultar: el usuario debe buscar de
// nuevo explícitamente.
func (c *Controller[T]) Limpiar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros = FilterState{Extra: map[string]string{}}
	c.resultados = nil
	c.proyectos = nil
}

// Total suma monto(item) sobre TODO el resultado cargado, no solo la página
// visible.
func (c *Controller[T]) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.monto == nil {
		return 0
	}
	var total float64
	for _, item := range c.resultados {
		total += c.monto(item)
	}
	return total
}

func (c *Controller[T]) Resultados() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.resultados))
	copy(out, c.resultados)
	return out
}

func (c *Controller[T]) Filtros() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.filtros
	if f.Extra != nil {
		extra := make(map[string]string, len(f.Extra))
		for k, v := range f.Extra {
			extra[k] = v
		}
		f.Extra = extra
	}
	return f
}

func (c *Controller[T]) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cargando
}

func (c *Controller[T]) Proyectos() []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Option(nil), c.proyectos...)
}

func (c *Controller[T]) Equipos() []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Option(nil), c.equipos...)
}

func (c *Controller[T]) OrdenesCompra() []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Option(nil), c.ordenes...)
}
