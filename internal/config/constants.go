package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./wingman.db"

	// DefaultDemoDatabasePath is the default path for the generated demo database
	DefaultDemoDatabasePath = "./demo/demo.db"
)
