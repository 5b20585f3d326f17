// Command server runs the Northcoders News API: a CRUD REST service for
// topics, articles, comments, and users over PostgreSQL with JWT auth.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/go-chi/docgen"

	"nc-news/internal/config"
	"nc-news/internal/platform/logger"
)

func main() {
	migrate := flag.String("migrate", "",
		"run a migration command (up, down, status, version) and exit")
	routes := flag.Bool("routes", false,
		"print generated route documentation and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)

	db, err := setupDatabase(cfg, logg)
	if err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if *migrate != "" {
		if err := runMigrations(db, logg, *migrate); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	app, err := newApplication(cfg, logg, db)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := app.setupRouter()

	if *routes {
		fmt.Println(docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
			ProjectPath: "nc-news",
			Intro:       "Generated route documentation for the Northcoders News API.",
		}))
		return
	}

	if err := app.serve(router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
