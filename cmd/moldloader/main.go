// Command moldloader replaces the mold catalog with the rows of a price
// spreadsheet.
//
//	moldloader -file precios.xlsx [-sheet TODAS]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/config"
	"github.com/sonsardina/framing-api/internal/infrastructure/database"
	"github.com/sonsardina/framing-api/internal/infrastructure/repository"
)

func main() {
	cfg := config.Load()

	path := flag.String("file", "", "mold price spreadsheet (.xlsx)")
	sheet := flag.String("sheet", cfg.Storage.MoldSheetName, "sheet holding the mold rows")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *path, err)
	}
	defer f.Close()

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	loader := service.NewMoldPriceLoader(repository.NewListPriceRepository(db), *sheet)
	stats, err := loader.Import(context.Background(), f)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Molds imported: parsed %d, upserted %d, deleted %d, skipped %d",
		stats.Parsed, stats.Upserted, stats.Deleted, stats.Skipped)
}
