// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default: file:project-request.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SeedOnStart: seed reference data before serving
  - Reset: drop and recreate all tables before seeding (flag only)
  - Command: serve, seed or intake (default: serve)

# CLI Flags

	-p      Server port
	-d      Database URL
	-t      Database type
	--seed  Seed on start
	--reset Empty the database before seeding

The command follows the flags:

	project-request -d file:dev.db seed

# Environment Variables

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SEED_ON_START  → --seed

CLI flags take precedence over environment variables, which take
precedence over a .env file.
*/
package cliparse
