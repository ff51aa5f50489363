package main

import (
	"fmt"
	"io/fs"
	"os"

	migrations "github.com/drvendasdev/pure-project-groundwork-sub000/db"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/config"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/db"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate <up|down|version|force N>")
		os.Exit(2)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	migrationsFS, err := fs.Sub(migrations.MigrationsFS, "migrations")
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrations fs: %v\n", err)
		os.Exit(1)
	}

	command := os.Args[1]
	if err := db.RunMigrate(logger.L, cfg.Postgres, migrationsFS, command, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}
