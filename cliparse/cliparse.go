// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Commands
const (
	CommandServe  = "serve"
	CommandSeed   = "seed"
	CommandIntake = "intake"
)

const (
	DefaultPort         = 3318
	DefaultDatabaseURL  = "file:project-request.db"
	DefaultDatabaseType = "sqlite"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SeedOnStart  bool
	Reset        bool
	Command      string
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("project-request", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.BoolVar(&cfg.SeedOnStart, "seed", false, "Seed reference data before serving")
	flags.BoolVar(&cfg.Reset, "reset", false, "Drop and recreate all tables before seeding")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultDatabaseURL
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	if !cfg.SeedOnStart {
		if v := os.Getenv("SEED_ON_START"); v != "" {
			seed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SEED_ON_START env variable")
			}
			cfg.SeedOnStart = seed
		}
	}

	switch flags.NArg() {
	case 0:
		cfg.Command = CommandServe
	case 1:
		cfg.Command = flags.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected one command, got %d", flags.NArg())
	}
	switch cfg.Command {
	case CommandServe, CommandSeed, CommandIntake:
	default:
		return Config{}, fmt.Errorf("unknown command %q (want serve, seed or intake)", cfg.Command)
	}

	return cfg, nil
}
