package main

import (
	"flag"
	"log"

	"pilarum/pkg/config"
	"pilarum/pkg/database/postgresql"
	"pilarum/seeders"
)

func main() {
	runRoles := flag.Bool("roles", false, "crear el rol Administrador y el superadmin")
	runDemo := flag.Bool("demo", false, "cargar datos de ejemplo para desarrollo")
	runAll := flag.Bool("all", false, "ejecutar todos los seeders")
	flag.Parse()

	if !*runRoles && !*runDemo && !*runAll {
		log.Println("no se ha indicado ningún seeder; flags disponibles:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runRoles || *runAll {
		seeders.SeedRolesAndAdmin(db)
	}
	if *runDemo || *runAll {
		seeders.SeedDemoData(db)
	}
}
