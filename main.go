package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wingmanapp/wingman/internal/config"
	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/demo"
	"github.com/wingmanapp/wingman/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "init-db":
		fs := flag.NewFlagSet("init-db", flag.ExitOnError)
		dbPath := fs.String("db", config.DefaultDatabasePath, "path to the database file")
		seed := fs.Bool("seed", false, "also seed sample drivers, accounts and rides")
		if err := fs.Parse(args); err != nil {
			os.Exit(1)
		}

		db, err := database.NewDatabase(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		if *seed {
			if err := demo.Seed(db); err != nil {
				log.Fatalf("Failed to seed sample data: %v", err)
			}
		}
		log.Printf("Database initialized successfully")

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  init-db   Create the database schema and reference data\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
