package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData carga un juego de datos mínimo para entornos de desarrollo:
// un socio con un proyecto, una máquina y unos movimientos de ejemplo.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()

	var socioID int
	err := db.QueryRow(ctx, `
		INSERT INTO socios (nombre, cif, direccion, email)
		VALUES ('Construcciones Ebro SL', 'B99000001', 'Av. de la Constitución 12, Zaragoza', 'oficina@ebro.example')
		ON CONFLICT (cif) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id
	`).Scan(&socioID)
	if err != nil {
		log.Fatalf("error creando el socio de demo: %v", err)
	}

	var proyectoID int
	err = db.QueryRow(ctx, `
		INSERT INTO proyectos (nombre, socio_id, direccion, fecha_inicio, presupuesto)
		VALUES ('Nave logística Plaza', $1, 'Polígono Plaza, parcela 41', '2025-02-01', 1250000)
		RETURNING id
	`, socioID).Scan(&proyectoID)
	if err != nil {
		log.Fatalf("error creando el proyecto de demo: %v", err)
	}

	var equipoID int
	err = db.QueryRow(ctx, `
		INSERT INTO maquinaria (nombre, matricula, tipo, proyecto_id, coste_hora)
		VALUES ('Excavadora CAT 320', 'E-4821-BCD', 'excavadora', $1, 85)
		RETURNING id
	`, proyectoID).Scan(&equipoID)
	if err != nil {
		log.Fatalf("error creando la máquina de demo: %v", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO movimientos (tipo_origen, socio_id, proyecto_id, concepto, monto, fecha)
		VALUES ('proyecto', $1, $2, 'Certificación obra febrero', 48200, '2025-02-28')
	`, socioID, proyectoID)
	if err != nil {
		log.Fatalf("error creando el movimiento de demo: %v", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO movimientos (tipo_origen, equipo_id, concepto, monto, fecha)
		VALUES ('gasto_maquinaria', $1, 'Combustible y mantenimiento', -1860, '2025-02-20')
	`, equipoID)
	if err != nil {
		log.Fatalf("error creando el gasto de demo: %v", err)
	}

	log.Println("datos de demo cargados")
}
