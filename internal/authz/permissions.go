package authz

// --- CATÁLOGO DE PERMISOS DEL SISTEMA ---
//
// Cada permiso tiene un ID entero fijo, único en todo el sistema. Los IDs se
// asignan por rangos de módulo; un ID nunca se reutiliza aunque el permiso
// desaparezca.

const (
	// Socios (0–19)
	SociosVer      = 0
	SociosCrear    = 1
	SociosEditar   = 2
	SociosEliminar = 3

	// Usuarios (100–109)
	UsuariosVer      = 100
	UsuariosCrear    = 101
	UsuariosEditar   = 102
	UsuariosEliminar = 103

	// Roles y permisos (110–129)
	RolesVer      = 110
	RolesCrear    = 111
	RolesEditar   = 112
	RolesEliminar = 113
	PermisosVer   = 120

	// Proyectos (200–299)
	ProyectosVer      = 200
	ProyectosCrear    = 201
	ProyectosEditar   = 202
	ProyectosEliminar = 203

	// Maquinaria (300–399)
	MaquinariaVer      = 300
	MaquinariaCrear    = 301
	MaquinariaEditar   = 302
	MaquinariaEliminar = 303

	// Órdenes de compra (400–499)
	OrdenesCompraVer      = 400
	OrdenesCompraCrear    = 401
	OrdenesCompraEditar   = 402
	OrdenesCompraEliminar = 403

	// Inventario (500–599)
	InventarioVer      = 500
	InventarioCrear    = 501
	InventarioEditar   = 502
	InventarioEliminar = 503

	// Nómina (600–699)
	NominaVer      = 600
	NominaCrear    = 601
	NominaEditar   = 602
	NominaEliminar = 603

	// Finanzas (700–799)
	FinanzasVer      = 700
	FinanzasExportar = 701

	// Pendientes (800–899)
	PendientesVer      = 800
	PendientesCrear    = 801
	PendientesEditar   = 802
	PendientesEliminar = 803
)

// Catalogo agrupa las etiquetas legibles por subgrupo. Es la tabla estática
// que usa la pantalla de edición de roles: el front manda etiquetas y aquí
// se convierten a IDs.
var Catalogo = map[string]map[string]int{
	"socios": {
		"Ver socios":      SociosVer,
		"Crear socios":    SociosCrear,
		"Editar socios":   SociosEditar,
		"Eliminar socios": SociosEliminar,
	},
	"usuarios": {
		"Ver usuarios":      UsuariosVer,
		"Crear usuarios":    UsuariosCrear,
		"Editar usuarios":   UsuariosEditar,
		"Eliminar usuarios": UsuariosEliminar,
	},
	"roles": {
		"Ver roles":      RolesVer,
		"Crear roles":    RolesCrear,
		"Editar roles":   RolesEditar,
		"Eliminar roles": RolesEliminar,
		"Ver permisos":   PermisosVer,
	},
	"proyectos": {
		"Ver proyectos":      ProyectosVer,
		"Crear proyectos":    ProyectosCrear,
		"Editar proyectos":   ProyectosEditar,
		"Eliminar proyectos": ProyectosEliminar,
	},
	"maquinaria": {
		"Ver maquinaria":      MaquinariaVer,
		"Crear maquinaria":    MaquinariaCrear,
		"Editar maquinaria":   MaquinariaEditar,
		"Eliminar maquinaria": MaquinariaEliminar,
	},
	"ordenes_compra": {
		"Ver órdenes de compra":      OrdenesCompraVer,
		"Crear órdenes de compra":    OrdenesCompraCrear,
		"Editar órdenes de compra":   OrdenesCompraEditar,
		"Eliminar órdenes de compra": OrdenesCompraEliminar,
	},
	"inventario": {
		"Ver inventario":      InventarioVer,
		"Crear inventario":    InventarioCrear,
		"Editar inventario":   InventarioEditar,
		"Eliminar inventario": InventarioEliminar,
	},
	"nomina": {
		"Ver nóminas":      NominaVer,
		"Crear nóminas":    NominaCrear,
		"Editar nóminas":   NominaEditar,
		"Eliminar nóminas": NominaEliminar,
	},
	"finanzas": {
		"Ver finanzas":      FinanzasVer,
		"Exportar finanzas": FinanzasExportar,
	},
	"pendientes": {
		"Ver pendientes":      PendientesVer,
		"Crear pendientes":    PendientesCrear,
		"Editar pendientes":   PendientesEditar,
		"Eliminar pendientes": PendientesEliminar,
	},
}
