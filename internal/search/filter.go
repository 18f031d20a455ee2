package search

import (
	"net/url"
	"strconv"
	"time"
)

// TipoOrigen discrimina qué clase de movimiento financiero se busca. Cada
// variante serializa únicamente sus campos relevantes.
type TipoOrigen string

const (
	TipoOrigenNinguno          TipoOrigen = ""
	TipoOrigenProyecto         TipoOrigen = "proyecto"
	TipoOrigenGastoMaquinaria  TipoOrigen = "gasto_maquinaria"
	TipoOrigenCompraMaquinaria TipoOrigen = "compra_maquinaria"
	TipoOrigenOrdenCompra      TipoOrigen = "orden_compra"
)

// FechaLayout es el formato dd-MM-yyyy con el que viajan las fechas.
const FechaLayout = "02-01-2006"

// FilterState es el estado del formulario de búsqueda. Los campos
// dependientes se vacían cuando cambia el campo del que dependen; eso lo
// gestiona el Controller, no este struct.
type FilterState struct {
	TipoOrigen    TipoOrigen
	EmpresaID     *int
	ProyectoID    *int
	EquipoID      *int
	OrdenCompraID string
	FechaInicio   *time.Time
	FechaFin      *time.Time
	Extra         map[string]string
}

// QueryParams serializa el estado como parámetros de consulta. Los campos
// vacíos se omiten por completo y las fechas se formatean dd-MM-yyyy.
// Solo entran los campos que aplican al TipoOrigen seleccionado.
func (f FilterState) QueryParams() map[string]string {
	params := make(map[string]string)

	if f.TipoOrigen != TipoOrigenNinguno {
		params["tipo_origen"] = string(f.TipoOrigen)
	}

	switch f.TipoOrigen {
	case TipoOrigenProyecto:
		putInt(params, "empresa", f.EmpresaID)
		putInt(params, "proyecto", f.ProyectoID)
	case TipoOrigenGastoMaquinaria, TipoOrigenCompraMaquinaria:
		putInt(params, "equipo", f.EquipoID)
	case TipoOrigenOrdenCompra:
		if f.OrdenCompraID != "" {
			params["numero_factura"] = f.OrdenCompraID
		}
	case TipoOrigenNinguno:
		// sin categoría solo aplican fechas y extras
	}

	if f.FechaInicio != nil {
		params["fecha_inicio"] = f.FechaInicio.Format(FechaLayout)
	}
	if f.FechaFin != nil {
		params["fecha_fin"] = f.FechaFin.Format(FechaLayout)
	}

	for k, v := range f.Extra {
		if v != "" {
			params[k] = v
		}
	}

	return params
}

func putInt(params map[string]string, key string, v *int) {
	if v != nil {
		params[key] = strconv.Itoa(*v)
	}
}

// ParseOptionalID convierte la entrada de un selector en un ID opcional.
// Una cadena vacía o no numérica equivale a "sin filtro", nunca a un error.
func ParseOptionalID(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// ParseFromQuery reconstruye un FilterState desde los parámetros de una
// petición HTTP. Es el camino inverso de QueryParams y lo usa la capa HTTP
// de finanzas.
func ParseFromQuery(values url.Values) FilterState {
	f := FilterState{
		TipoOrigen:    TipoOrigen(values.Get("tipo_origen")),
		EmpresaID:     ParseOptionalID(values.Get("empresa")),
		ProyectoID:    ParseOptionalID(values.Get("proyecto")),
		EquipoID:      ParseOptionalID(values.Get("equipo")),
		OrdenCompraID: values.Get("numero_factura"),
	}

	if t, err := time.Parse(FechaLayout, values.Get("fecha_inicio")); err == nil {
		f.FechaInicio = &t
	}
	if t, err := time.Parse(FechaLayout, values.Get("fecha_fin")); err == nil {
		f.FechaFin = &t
	}

	switch f.TipoOrigen {
	case TipoOrigenNinguno, TipoOrigenProyecto, TipoOrigenGastoMaquinaria,
		TipoOrigenCompraMaquinaria, TipoOrigenOrdenCompra:
	default:
		// una categoría desconocida degrada a "sin filtro"
		f.TipoOrigen = TipoOrigenNinguno
	}

	return f
}
