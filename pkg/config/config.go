package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries the driver-level settings. Values come from the environment
// (TIMETABLE_ prefix, dots as underscores), optionally seeded from a .env file,
// with defaults below; the CLI flags override them per invocation.
type Config struct {
	Env          string
	Data         string // dataset JSON file
	Department   string // optional department filter
	Options      int    // number of candidates for the options command
	Seed         int64  // base random seed
	SearchBudget uint64 // scheduler node budget, 0 = unbounded
	Log          LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	v := viper.New()
	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("data", "data.json")
	v.SetDefault("department", "")
	v.SetDefault("options", 3)
	v.SetDefault("seed", 42)
	v.SetDefault("search_budget", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	cfg := &Config{
		Env:          v.GetString("env"),
		Data:         v.GetString("data"),
		Department:   v.GetString("department"),
		Options:      v.GetInt("options"),
		Seed:         v.GetInt64("seed"),
		SearchBudget: v.GetUint64("search_budget"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	return cfg, nil
}
