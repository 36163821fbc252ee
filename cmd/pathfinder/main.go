package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pathfinder/internal/catalog"
	"github.com/alexanderramin/pathfinder/internal/cli"
	"github.com/alexanderramin/pathfinder/internal/config"
	"github.com/alexanderramin/pathfinder/internal/db"
	"github.com/alexanderramin/pathfinder/internal/repository"
	"github.com/alexanderramin/pathfinder/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Memory mode keeps the same schema and transactions, just not on disk.
	dbPath := cfg.DBPath
	if cfg.Store == config.StoreMemory {
		dbPath = db.MemoryPath
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, service.LogFormat(cfg.LogFormat))
	}

	kv := repository.NewSQLiteKVStore(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Roadmaps: service.NewRoadmapService(catalog.New(cfg.RoadmapDir), observer),
		Progress: service.NewProgressService(kv, observer),
		Transfer: service.NewTransferService(kv, uow, observer),
	}

	app.IsInteractive = func() bool {
		if cfg.ForceNonInteractive {
			return false
		}
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
