// Command generate_demo creates a demo database with a sample fleet,
// rider accounts and pending ride requests.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/wingmanapp/wingman/internal/config"
	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/demo"
)

func main() {
	dbPath := flag.String("db", config.DefaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if err := demo.Seed(db); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Demo database ready at %s", *dbPath)
}
