package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		CORS
		Metrics
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	CORS struct {
		AllowOrigins []string // empty means allow all
	}
	Metrics struct {
		Enabled bool
	}
	Demo struct {
		Enabled       bool   // Reset the database to sample data on a schedule
		ResetSchedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
)

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("metrics_enabled", true)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reset_schedule", "*/15 * * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		CORS: CORS{
			AllowOrigins: splitOrigins(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Demo: Demo{
			Enabled:       v.GetBool("DEMO_MODE"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
	}
}
