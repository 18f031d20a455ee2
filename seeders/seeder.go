package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pilarum/internal/authz"
	"pilarum/pkg/utils"
)

// SeedRolesAndAdmin crea el rol Administrador con todos los permisos del
// catálogo y el usuario superadmin. Es idempotente: se puede relanzar sobre
// una base ya poblada.
func SeedRolesAndAdmin(db *pgxpool.Pool) {
	ctx := context.Background()

	adminRolID, err := seedAdminRole(ctx, db)
	if err != nil {
		log.Fatalf("error creando el rol Administrador: %v", err)
	}
	if err := seedSuperAdmin(ctx, db, adminRolID); err != nil {
		log.Fatalf("error creando el superadmin: %v", err)
	}

	log.Println("roles y administrador listos")
}

func seedAdminRole(ctx context.Context, db *pgxpool.Pool) (int, error) {
	var rolID int
	err := db.QueryRow(ctx, "SELECT id FROM roles WHERE nombre = 'Administrador'").Scan(&rolID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = db.QueryRow(ctx,
			"INSERT INTO roles (nombre, descripcion) VALUES ('Administrador', 'Acceso completo al sistema') RETURNING id",
		).Scan(&rolID)
	}
	if err != nil {
		return 0, err
	}

	// el rol admin lleva siempre el catálogo completo
	for _, permisoID := range authz.AllIDs() {
		_, err := db.Exec(ctx,
			"INSERT INTO rol_permisos (rol_id, permiso_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			rolID, permisoID,
		)
		if err != nil {
			return 0, fmt.Errorf("asignando el permiso %d: %w", permisoID, err)
		}
	}

	return rolID, nil
}

func seedSuperAdmin(ctx context.Context, db *pgxpool.Pool, rolID int) error {
	email := "admin@pilarum.es"

	var existing int
	err := db.QueryRow(ctx, "SELECT id FROM usuarios WHERE email = $1", email).Scan(&existing)
	if err == nil {
		log.Println("el superadmin ya existe, no se vuelve a crear")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := utils.HashPassword("cambiar-al-entrar")
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		"INSERT INTO usuarios (nombre, email, password_hash, rol_id) VALUES ($1, $2, $3, $4)",
		"Administrador", email, hash, rolID,
	)
	return err
}
