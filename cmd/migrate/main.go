// Command migrate applies or rolls back the embedded schema migrations.
//
//	migrate up        apply every pending migration
//	migrate down [N]  roll back N migrations (default 1)
//	migrate status    print the applied version
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spinhouse/roulette-backend/internal/infrastructure/config"
	"github.com/spinhouse/roulette-backend/internal/infrastructure/db/postgres"
	"github.com/spinhouse/roulette-backend/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Service: "roulette-migrate"})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up | down [N] | status")
		os.Exit(2)
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mg, err := postgres.NewMigrator(cfg.Database.URL(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open migrator")
	}
	defer mg.Close()

	switch os.Args[1] {
	case "up":
		err = mg.Up()
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil {
				log.Fatal().Err(err).Msg("invalid step count")
			}
		}
		err = mg.Down(steps)
	case "status":
		var (
			version   uint
			dirty, ok bool
		)
		version, dirty, ok, err = mg.Version()
		if err == nil {
			if !ok {
				log.Info().Msg("no migrations applied")
			} else {
				log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migration status")
			}
		}
	default:
		log.Fatal().Str("command", os.Args[1]).Msg("unknown command")
	}

	if err != nil {
		log.Fatal().Err(err).Msgf("migrate %s failed", os.Args[1])
	}
	log.Info().Msgf("migrate %s done", os.Args[1])
}
